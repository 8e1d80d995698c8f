package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
// Settings live in a single fixed row that is created on first read.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the settings record, creating the default one on first use.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			defaults := entity.DefaultSettings()
			if err := r.db.WithContext(ctx).Create(model.SettingsFromEntity(defaults)).Error; err != nil {
				return nil, err
			}
			return defaults, nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Update stores the full settings record.
func (r *settingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	return r.db.WithContext(ctx).Save(model.SettingsFromEntity(settings)).Error
}
