package category

import (
	"context"
	"log/slog"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

type SeedCategoriesOutput struct {
	Seeded int
}

// SeedCategoriesUseCase populates an empty install with the default
// category set. It runs once at startup and is a no-op when any category
// already exists.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{categoryRepo: categoryRepo}
}

func (u *SeedCategoriesUseCase) Execute(ctx context.Context) (*SeedCategoriesOutput, error) {
	count, err := u.categoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &SeedCategoriesOutput{Seeded: 0}, nil
	}

	defaults := entity.DefaultCategories()
	for _, c := range defaults {
		if err := u.categoryRepo.Create(ctx, c); err != nil {
			return nil, err
		}
	}
	slog.Info("seeded default categories", "count", len(defaults))
	return &SeedCategoriesOutput{Seeded: len(defaults)}, nil
}
