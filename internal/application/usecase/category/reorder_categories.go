package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type ReorderCategoriesInput struct {
	FirstID  uuid.UUID
	SecondID uuid.UUID
}

type ReorderCategoriesOutput struct {
	Categories []*entity.Category
}

// ReorderCategoriesUseCase swaps the display order of two categories of the
// same type.
type ReorderCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

func NewReorderCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ReorderCategoriesUseCase {
	return &ReorderCategoriesUseCase{categoryRepo: categoryRepo}
}

func (u *ReorderCategoriesUseCase) Execute(ctx context.Context, input ReorderCategoriesInput) (*ReorderCategoriesOutput, error) {
	first, err := findCategory(ctx, u.categoryRepo, input.FirstID)
	if err != nil {
		return nil, err
	}
	second, err := findCategory(ctx, u.categoryRepo, input.SecondID)
	if err != nil {
		return nil, err
	}
	if first.Type != second.Type {
		return nil, domainError.NewCategoryError(
			domainError.ErrCodeCategoryTypeMismatch,
			"categories must share a type to be reordered",
			domainError.ErrCategoryTypeMismatch,
		)
	}

	first.Order, second.Order = second.Order, first.Order
	now := time.Now().UTC()
	first.UpdatedAt = now
	second.UpdatedAt = now

	if err := u.categoryRepo.Update(ctx, first); err != nil {
		return nil, err
	}
	if err := u.categoryRepo.Update(ctx, second); err != nil {
		return nil, err
	}
	return &ReorderCategoriesOutput{Categories: []*entity.Category{first, second}}, nil
}
