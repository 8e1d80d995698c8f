// Package subscription contains the recurring-cost ledger use cases.
// Subscriptions are informational; they never generate transactions.
package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type SubscriptionInput struct {
	Name          string
	Amount        decimal.Decimal
	Frequency     entity.SubscriptionFrequency
	Category      string
	PaymentMethod entity.PaymentMethod
	CardID        *uuid.UUID
	StartDate     time.Time
	Active        bool
	Notes         string
}

type SubscriptionOutput struct {
	Subscription *entity.Subscription
}

type ListSubscriptionsOutput struct {
	Subscriptions []*entity.Subscription
}

type SubscriptionUseCases struct {
	subscriptionRepo adapter.SubscriptionRepository
}

func NewSubscriptionUseCases(subscriptionRepo adapter.SubscriptionRepository) *SubscriptionUseCases {
	return &SubscriptionUseCases{subscriptionRepo: subscriptionRepo}
}

func (u *SubscriptionUseCases) List(ctx context.Context) (*ListSubscriptionsOutput, error) {
	subscriptions, err := u.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListSubscriptionsOutput{Subscriptions: subscriptions}, nil
}

func (u *SubscriptionUseCases) Create(ctx context.Context, input SubscriptionInput) (*SubscriptionOutput, error) {
	if err := validateSubscription(input); err != nil {
		return nil, err
	}
	created := entity.NewSubscription(
		input.Name,
		input.Amount,
		input.Frequency,
		input.Category,
		input.PaymentMethod,
		input.CardID,
		input.StartDate,
		input.Notes,
	)
	if err := u.subscriptionRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	return &SubscriptionOutput{Subscription: created}, nil
}

func (u *SubscriptionUseCases) Update(ctx context.Context, id uuid.UUID, input SubscriptionInput) (*SubscriptionOutput, error) {
	if err := validateSubscription(input); err != nil {
		return nil, err
	}
	existing, err := u.findSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Amount = input.Amount
	existing.Frequency = input.Frequency
	existing.Category = input.Category
	existing.PaymentMethod = input.PaymentMethod
	existing.CardID = input.CardID
	existing.StartDate = entity.TruncateDate(input.StartDate)
	existing.Active = input.Active
	existing.Notes = input.Notes
	existing.UpdatedAt = time.Now().UTC()
	if err := u.subscriptionRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return &SubscriptionOutput{Subscription: existing}, nil
}

func (u *SubscriptionUseCases) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.findSubscription(ctx, id); err != nil {
		return err
	}
	return u.subscriptionRepo.Delete(ctx, id)
}

func (u *SubscriptionUseCases) findSubscription(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	subscription, err := u.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, domainError.NewGeneralError(
			domainError.ErrCodeSubscriptionNotFound,
			"subscription not found",
			domainError.ErrSubscriptionNotFound,
		)
	}
	return subscription, nil
}

func validateSubscription(input SubscriptionInput) error {
	if input.Name == "" || !input.Amount.IsPositive() {
		return domainError.NewGeneralError(
			domainError.ErrCodeInvalidSubscription,
			"subscription needs a name and a positive amount",
			domainError.ErrInvalidSubscriptionAmount,
		)
	}
	if !entity.IsValidSubscriptionFrequency(input.Frequency) {
		return domainError.NewGeneralError(
			domainError.ErrCodeInvalidSubscription,
			"invalid subscription frequency",
			domainError.ErrInvalidFrequency,
		)
	}
	return nil
}
