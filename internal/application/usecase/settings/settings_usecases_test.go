package settings

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter/adaptertest"
	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestSettingsUseCases(t *testing.T) {
	ctx := context.Background()

	t.Run("get on a fresh install returns defaults", func(t *testing.T) {
		useCase := NewSettingsUseCases(adaptertest.NewSettingsRepository())

		output, err := useCase.Get(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Settings.UserName != "User" {
			t.Errorf("expected default user name, got %q", output.Settings.UserName)
		}
		if output.Settings.Theme != "dark" {
			t.Errorf("expected default theme, got %q", output.Settings.Theme)
		}
		if !output.Settings.TotalSavings.IsZero() {
			t.Errorf("expected zero savings, got %s", output.Settings.TotalSavings)
		}
	})

	t.Run("update merges only the provided fields", func(t *testing.T) {
		useCase := NewSettingsUseCases(adaptertest.NewSettingsRepository())

		name := "Gabi"
		income := decimal.NewFromInt(8000)
		if _, err := useCase.Update(ctx, entity.SettingsPatch{UserName: &name, MonthlyIncome: &income}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		savings := decimal.NewFromInt(12000)
		output, err := useCase.Update(ctx, entity.SettingsPatch{TotalSavings: &savings})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Settings.UserName != "Gabi" {
			t.Errorf("expected earlier name kept, got %q", output.Settings.UserName)
		}
		if !output.Settings.MonthlyIncome.Equal(income) {
			t.Errorf("expected earlier income kept, got %s", output.Settings.MonthlyIncome)
		}
		if !output.Settings.TotalSavings.Equal(savings) {
			t.Errorf("expected savings updated, got %s", output.Settings.TotalSavings)
		}
	})

	t.Run("update persists to the store", func(t *testing.T) {
		repo := adaptertest.NewSettingsRepository()
		useCase := NewSettingsUseCases(repo)

		enabled := true
		if _, err := useCase.Update(ctx, entity.SettingsPatch{PrivacyMode: &enabled}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.Get(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !stored.PrivacyMode {
			t.Error("expected privacy mode persisted")
		}
	})
}
