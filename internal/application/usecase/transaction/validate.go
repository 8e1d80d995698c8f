// Package transaction contains the transaction CRUD use cases and their
// balance and savings side effects.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

// TransactionInput carries the user-editable fields of a transaction.
type TransactionInput struct {
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Category      string
	Description   string
	PaymentMethod entity.PaymentMethod
	CardID        *uuid.UUID
	Date          time.Time
}

func validateInput(input TransactionInput) error {
	if !entity.IsValidTransactionType(input.Type) {
		return domainError.NewTransactionError(
			domainError.ErrCodeInvalidTransactionType,
			"invalid transaction type",
			domainError.ErrInvalidTransactionType,
		)
	}
	if !input.Amount.IsPositive() {
		return domainError.NewTransactionError(
			domainError.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainError.ErrInvalidTransactionAmount,
		)
	}
	if input.Date.IsZero() {
		return domainError.NewTransactionError(
			domainError.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainError.ErrInvalidTransactionDate,
		)
	}
	if !entity.IsValidPaymentMethod(input.PaymentMethod) {
		return domainError.NewTransactionError(
			domainError.ErrCodeInvalidPaymentMethod,
			"invalid payment method",
			domainError.ErrInvalidPaymentMethod,
		)
	}
	if input.PaymentMethod == entity.PaymentMethodCreditCard && input.CardID == nil {
		return domainError.NewTransactionError(
			domainError.ErrCodeCardRequired,
			"credit card transactions require a card reference",
			domainError.ErrCardRequired,
		)
	}
	// A payment without a card would be stored but move no balance.
	if input.Type == entity.TransactionTypeCreditCardPayment && input.CardID == nil {
		return domainError.NewTransactionError(
			domainError.ErrCodeCardRequired,
			"card payments require a card reference",
			domainError.ErrCardRequired,
		)
	}
	return nil
}

// resolveCard loads and checks the referenced card, or returns nil when the
// input carries no card reference. New expenses may not land on an archived
// card; payments still may, so its balance can be wound down.
func resolveCard(ctx context.Context, cardRepo adapter.CardRepository, input TransactionInput) (*entity.CreditCard, error) {
	if input.CardID == nil {
		return nil, nil
	}
	card, err := cardRepo.FindByID(ctx, *input.CardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domainError.NewTransactionError(
			domainError.ErrCodeTxnCardNotFound,
			"referenced card not found",
			domainError.ErrCardNotFoundForTransaction,
		)
	}
	if card.Archived && input.Type == entity.TransactionTypeExpense {
		return nil, domainError.NewTransactionError(
			domainError.ErrCodeTxnCardArchived,
			"referenced card is archived",
			domainError.ErrCardArchivedForTransaction,
		)
	}
	return card, nil
}
