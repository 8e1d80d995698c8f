package card

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

// UpdateCardInput edits a card's user-authored fields. Balance is derived
// and deliberately absent.
type UpdateCardInput struct {
	ID    uuid.UUID
	Name  string
	Limit decimal.Decimal
}

type UpdateCardOutput struct {
	Card *entity.CreditCard
}

type UpdateCardUseCase struct {
	cardRepo adapter.CardRepository
}

func NewUpdateCardUseCase(cardRepo adapter.CardRepository) *UpdateCardUseCase {
	return &UpdateCardUseCase{cardRepo: cardRepo}
}

func (u *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	if input.Name == "" {
		return nil, domainError.NewCardError(
			domainError.ErrCodeMissingCardFields,
			"card name is required",
			nil,
		)
	}
	if input.Limit.IsNegative() {
		return nil, domainError.NewCardError(
			domainError.ErrCodeInvalidCardLimit,
			"card limit must not be negative",
			domainError.ErrInvalidCardLimit,
		)
	}

	existing, err := findCard(ctx, u.cardRepo, input.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Limit = input.Limit
	existing.UpdatedAt = time.Now().UTC()
	if err := u.cardRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return &UpdateCardOutput{Card: existing}, nil
}

func findCard(ctx context.Context, cardRepo adapter.CardRepository, id uuid.UUID) (*entity.CreditCard, error) {
	card, err := cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domainError.NewCardError(
			domainError.ErrCodeCardNotFound,
			"credit card not found",
			domainError.ErrCardNotFound,
		)
	}
	return card, nil
}
