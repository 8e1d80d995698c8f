package category

import (
	"context"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

type ListCategoriesOutput struct {
	Categories []*entity.Category
}

type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

func (u *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := u.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}
