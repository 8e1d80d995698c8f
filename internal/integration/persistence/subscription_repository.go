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

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindAll(ctx context.Context) ([]*entity.Subscription, error) {
	var subscriptionModels []model.SubscriptionModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&subscriptionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	subscriptions := make([]*entity.Subscription, len(subscriptionModels))
	for i, sm := range subscriptionModels {
		subscriptions[i] = sm.ToEntity()
	}
	return subscriptions, nil
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionModel model.SubscriptionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&subscriptionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return subscriptionModel.ToEntity(), nil
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	return r.db.WithContext(ctx).Create(model.SubscriptionFromEntity(subscription)).Error
}

func (r *subscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	return r.db.WithContext(ctx).Save(model.SubscriptionFromEntity(subscription)).Error
}

func (r *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SubscriptionModel{}).Error
}

func (r *subscriptionRepository) ReplaceAll(ctx context.Context, subscriptions []*entity.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.SubscriptionModel{}).Error; err != nil {
			return err
		}
		for _, s := range subscriptions {
			if err := tx.Create(model.SubscriptionFromEntity(s)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
