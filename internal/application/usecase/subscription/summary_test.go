package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter/adaptertest"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

func seedSubscription(t *testing.T, repo *adaptertest.SubscriptionRepository, name, amount string, frequency entity.SubscriptionFrequency, active bool) *entity.Subscription {
	t.Helper()
	s := entity.NewSubscription(
		name,
		decimal.RequireFromString(amount),
		frequency,
		"Entertainment",
		entity.PaymentMethodCreditCard,
		nil,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"",
	)
	s.Active = active
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewSubscriptionRepository()

	seedSubscription(t, repo, "Netflix", "120", entity.FrequencyMonthly, true)
	seedSubscription(t, repo, "iCloud", "300", entity.FrequencyQuarterly, true)   // 100 monthly
	seedSubscription(t, repo, "Insurance", "600", entity.FrequencySemiAnnually, true) // 100 monthly
	seedSubscription(t, repo, "Domain", "1200", entity.FrequencyAnnually, true)   // 100 monthly
	seedSubscription(t, repo, "Old Gym", "500", entity.FrequencyMonthly, false)   // inactive, skipped

	output, err := NewSummaryUseCase(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.ActiveCount != 4 {
		t.Errorf("expected 4 active subscriptions, got %d", output.ActiveCount)
	}
	if got := output.MonthlyTotal.String(); got != "420" {
		t.Errorf("expected monthly total 420, got %s", got)
	}
	if got := output.QuarterlyTotal.String(); got != "1260" {
		t.Errorf("expected quarterly total 1260, got %s", got)
	}
	if got := output.AnnualTotal.String(); got != "5040" {
		t.Errorf("expected annual total 5040, got %s", got)
	}
}

func TestSubscriptionValidation(t *testing.T) {
	ctx := context.Background()
	useCases := NewSubscriptionUseCases(adaptertest.NewSubscriptionRepository())

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := useCases.Create(ctx, SubscriptionInput{
			Amount:    decimal.NewFromInt(100),
			Frequency: entity.FrequencyMonthly,
		})

		var genErr *domainError.GeneralError
		if !errors.As(err, &genErr) || genErr.Code != domainError.ErrCodeInvalidSubscription {
			t.Errorf("expected invalid subscription error, got %v", err)
		}
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		_, err := useCases.Create(ctx, SubscriptionInput{
			Name:      "Netflix",
			Amount:    decimal.NewFromInt(100),
			Frequency: "weekly",
		})

		var genErr *domainError.GeneralError
		if !errors.As(err, &genErr) || genErr.Code != domainError.ErrCodeInvalidSubscription {
			t.Errorf("expected invalid subscription error, got %v", err)
		}
	})

	t.Run("creates active by default", func(t *testing.T) {
		output, err := useCases.Create(ctx, SubscriptionInput{
			Name:          "Spotify",
			Amount:        decimal.NewFromInt(58),
			Frequency:     entity.FrequencyMonthly,
			Category:      "Entertainment",
			PaymentMethod: entity.PaymentMethodCreditCard,
			StartDate:     time.Now(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Subscription.Active {
			t.Error("expected new subscription active")
		}
	})
}
