package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
)

type DeleteCategoryInput struct {
	ID uuid.UUID
}

// DeleteCategoryUseCase removes a category. Transactions that referenced it
// keep their stored category string; lookups that miss fall back to
// "Uncategorized" at read time.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo}
}

func (u *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if _, err := findCategory(ctx, u.categoryRepo, input.ID); err != nil {
		return err
	}
	return u.categoryRepo.Delete(ctx, input.ID)
}
