package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) FindAll(ctx context.Context) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).Order("deadline ASC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Create(model.GoalFromEntity(goal)).Error
}

func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Save(model.GoalFromEntity(goal)).Error
}

func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GoalModel{}).Error
}

func (r *goalRepository) ReplaceAll(ctx context.Context, goals []*entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.GoalModel{}).Error; err != nil {
			return err
		}
		for _, g := range goals {
			if err := tx.Create(model.GoalFromEntity(g)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
