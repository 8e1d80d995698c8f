// Package card contains the credit card lifecycle use cases. Cards are never
// deleted: archiving keeps their balance history intact for reconciliation.
package card

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type CreateCardInput struct {
	Name  string
	Limit decimal.Decimal
}

type CreateCardOutput struct {
	Card *entity.CreditCard
}

type CreateCardUseCase struct {
	cardRepo adapter.CardRepository
}

func NewCreateCardUseCase(cardRepo adapter.CardRepository) *CreateCardUseCase {
	return &CreateCardUseCase{cardRepo: cardRepo}
}

func (u *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
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

	created := entity.NewCreditCard(input.Name, input.Limit)
	if err := u.cardRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	return &CreateCardOutput{Card: created}, nil
}
