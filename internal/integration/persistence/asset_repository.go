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

// assetRepository implements the adapter.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository instance.
func NewAssetRepository(db *gorm.DB) adapter.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) FindAll(ctx context.Context) ([]*entity.Asset, error) {
	var assetModels []model.AssetModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&assetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	assets := make([]*entity.Asset, len(assetModels))
	for i, am := range assetModels {
		assets[i] = am.ToEntity()
	}
	return assets, nil
}

func (r *assetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	var assetModel model.AssetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&assetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return assetModel.ToEntity(), nil
}

func (r *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Create(model.AssetFromEntity(asset)).Error
}

func (r *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Save(model.AssetFromEntity(asset)).Error
}

func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AssetModel{}).Error
}

func (r *assetRepository) ReplaceAll(ctx context.Context, assets []*entity.Asset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.AssetModel{}).Error; err != nil {
			return err
		}
		for _, a := range assets {
			if err := tx.Create(model.AssetFromEntity(a)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
