package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type UpdateCategoryInput struct {
	ID    uuid.UUID
	Name  string
	Emoji string
}

type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase renames a category or changes its emoji. Type and
// order are adjusted through dedicated operations, not here.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo}
}

func (u *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainError.NewCategoryError(
			domainError.ErrCodeMissingCategoryFields,
			"category name is required",
			nil,
		)
	}

	existing, err := findCategory(ctx, u.categoryRepo, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != existing.Name {
		duplicate, err := u.categoryRepo.FindByNameAndType(ctx, input.Name, existing.Type)
		if err != nil {
			return nil, err
		}
		if duplicate != nil {
			return nil, domainError.NewCategoryError(
				domainError.ErrCodeDuplicateCategoryName,
				"category name already exists for this type",
				domainError.ErrDuplicateCategoryName,
			)
		}
	}

	existing.Name = input.Name
	existing.Emoji = input.Emoji
	existing.UpdatedAt = time.Now().UTC()
	if err := u.categoryRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return &UpdateCategoryOutput{Category: existing}, nil
}

func findCategory(ctx context.Context, categoryRepo adapter.CategoryRepository, id uuid.UUID) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domainError.NewCategoryError(
			domainError.ErrCodeCategoryNotFound,
			"category not found",
			domainError.ErrCategoryNotFound,
		)
	}
	return category, nil
}
