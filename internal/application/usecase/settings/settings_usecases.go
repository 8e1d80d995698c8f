// Package settings contains the settings singleton use cases.
package settings

import (
	"context"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

type SettingsOutput struct {
	Settings *entity.Settings
}

type SettingsUseCases struct {
	settingsRepo adapter.SettingsRepository
}

func NewSettingsUseCases(settingsRepo adapter.SettingsRepository) *SettingsUseCases {
	return &SettingsUseCases{settingsRepo: settingsRepo}
}

func (u *SettingsUseCases) Get(ctx context.Context) (*SettingsOutput, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &SettingsOutput{Settings: settings}, nil
}

// Update shallow-merges the patch over the stored record; fields absent from
// the patch keep their stored values.
func (u *SettingsUseCases) Update(ctx context.Context, patch entity.SettingsPatch) (*SettingsOutput, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	patch.Apply(settings)
	if err := u.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return &SettingsOutput{Settings: settings}, nil
}
