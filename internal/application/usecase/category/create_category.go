// Package category contains the category CRUD, reorder, and seeding use
// cases.
package category

import (
	"context"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type CreateCategoryInput struct {
	Name  string
	Type  entity.CategoryType
	Emoji string
}

type CreateCategoryOutput struct {
	Category *entity.Category
}

type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

func (u *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainError.NewCategoryError(
			domainError.ErrCodeMissingCategoryFields,
			"category name is required",
			nil,
		)
	}
	if input.Type != entity.CategoryTypeExpense && input.Type != entity.CategoryTypeIncome {
		return nil, domainError.NewCategoryError(
			domainError.ErrCodeInvalidCategoryType,
			"invalid category type",
			domainError.ErrInvalidCategoryType,
		)
	}

	duplicate, err := u.categoryRepo.FindByNameAndType(ctx, input.Name, input.Type)
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

	// New categories go to the end of their type's display order.
	all, err := u.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	nextOrder := 1
	for _, c := range all {
		if c.Type == input.Type && c.Order >= nextOrder {
			nextOrder = c.Order + 1
		}
	}

	created := entity.NewCategory(input.Name, input.Type, input.Emoji, nextOrder)
	if err := u.categoryRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	return &CreateCategoryOutput{Category: created}, nil
}
