package category

import (
	"context"
	"errors"
	"testing"

	"github.com/pocketledger/backend/internal/application/adapter/adaptertest"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("first category of a type gets order 1", func(t *testing.T) {
		repo := adaptertest.NewCategoryRepository()
		useCase := NewCreateCategoryUseCase(repo)

		output, err := useCase.Execute(ctx, CreateCategoryInput{
			Name: "Food & Dining", Type: entity.CategoryTypeExpense, Emoji: "🍜",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Order != 1 {
			t.Errorf("expected order 1, got %d", output.Category.Order)
		}
	})

	t.Run("new categories append within their type", func(t *testing.T) {
		repo := adaptertest.NewCategoryRepository()
		useCase := NewCreateCategoryUseCase(repo)

		if _, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Food", Type: entity.CategoryTypeExpense}); err != nil {
			t.Fatal(err)
		}
		if _, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Salary", Type: entity.CategoryTypeIncome}); err != nil {
			t.Fatal(err)
		}

		output, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Transport", Type: entity.CategoryTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Order != 2 {
			t.Errorf("expected expense order 2 independent of income rows, got %d", output.Category.Order)
		}
	})

	t.Run("duplicate name within a type is rejected", func(t *testing.T) {
		repo := adaptertest.NewCategoryRepository()
		useCase := NewCreateCategoryUseCase(repo)

		if _, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Food", Type: entity.CategoryTypeExpense}); err != nil {
			t.Fatal(err)
		}

		_, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Food", Type: entity.CategoryTypeExpense})
		var catErr *domainError.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainError.ErrCodeDuplicateCategoryName {
			t.Errorf("expected duplicate name error, got %v", err)
		}
	})

	t.Run("same name across types is allowed", func(t *testing.T) {
		repo := adaptertest.NewCategoryRepository()
		useCase := NewCreateCategoryUseCase(repo)

		if _, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Other", Type: entity.CategoryTypeExpense}); err != nil {
			t.Fatal(err)
		}
		if _, err := useCase.Execute(ctx, CreateCategoryInput{Name: "Other", Type: entity.CategoryTypeIncome}); err != nil {
			t.Errorf("expected same name on the other type to pass, got %v", err)
		}
	})
}

func TestReorderCategoriesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("swaps display order of same-type categories", func(t *testing.T) {
		repo := adaptertest.NewCategoryRepository()
		create := NewCreateCategoryUseCase(repo)
		reorder := NewReorderCategoriesUseCase(repo)

		first, err := create.Execute(ctx, CreateCategoryInput{Name: "Food", Type: entity.CategoryTypeExpense})
		if err != nil {
			t.Fatal(err)
		}
		second, err := create.Execute(ctx, CreateCategoryInput{Name: "Transport", Type: entity.CategoryTypeExpense})
		if err != nil {
			t.Fatal(err)
		}

		if _, err := reorder.Execute(ctx, ReorderCategoriesInput{
			FirstID:  first.Category.ID,
			SecondID: second.Category.ID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		swapped, err := repo.FindByID(ctx, first.Category.ID)
		if err != nil {
			t.Fatal(err)
		}
		if swapped.Order != 2 {
			t.Errorf("expected first category moved to order 2, got %d", swapped.Order)
		}
	})

	t.Run("rejects cross-type swaps", func(t *testing.T) {
		repo := adaptertest.NewCategoryRepository()
		create := NewCreateCategoryUseCase(repo)
		reorder := NewReorderCategoriesUseCase(repo)

		expense, err := create.Execute(ctx, CreateCategoryInput{Name: "Food", Type: entity.CategoryTypeExpense})
		if err != nil {
			t.Fatal(err)
		}
		income, err := create.Execute(ctx, CreateCategoryInput{Name: "Salary", Type: entity.CategoryTypeIncome})
		if err != nil {
			t.Fatal(err)
		}

		_, err = reorder.Execute(ctx, ReorderCategoriesInput{
			FirstID:  expense.Category.ID,
			SecondID: income.Category.ID,
		})
		var catErr *domainError.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainError.ErrCodeCategoryTypeMismatch {
			t.Errorf("expected type mismatch error, got %v", err)
		}
	})
}

func TestSeedCategoriesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the default set into an empty store", func(t *testing.T) {
		repo := adaptertest.NewCategoryRepository()
		useCase := NewSeedCategoriesUseCase(repo)

		output, err := useCase.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Seeded != len(entity.DefaultCategories()) {
			t.Errorf("expected %d seeded, got %d", len(entity.DefaultCategories()), output.Seeded)
		}

		count, err := repo.Count(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if int(count) != output.Seeded {
			t.Errorf("expected %d stored, got %d", output.Seeded, count)
		}
	})

	t.Run("is a no-op when categories exist", func(t *testing.T) {
		repo := adaptertest.NewCategoryRepository()
		if err := repo.Create(ctx, entity.NewCategory("Custom", entity.CategoryTypeExpense, "", 1)); err != nil {
			t.Fatal(err)
		}
		useCase := NewSeedCategoriesUseCase(repo)

		output, err := useCase.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Seeded != 0 {
			t.Errorf("expected no seeding on a populated store, got %d", output.Seeded)
		}

		count, err := repo.Count(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("expected the existing category untouched, got %d rows", count)
		}
	})
}
