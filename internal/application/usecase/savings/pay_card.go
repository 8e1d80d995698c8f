package savings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/reconciliation"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type PayCardInput struct {
	CardID uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
}

type PayCardOutput struct {
	Transaction *entity.Transaction
	Card        *entity.CreditCard
}

// PayCardUseCase settles part of a card balance out of the savings pool. The
// payment is recorded as a credit_card_payment transaction so the balance can
// always be recomputed from history alone.
type PayCardUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CardRepository
	settingsRepo    adapter.SettingsRepository
}

func NewPayCardUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CardRepository,
	settingsRepo adapter.SettingsRepository,
) *PayCardUseCase {
	return &PayCardUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		settingsRepo:    settingsRepo,
	}
}

func (u *PayCardUseCase) Execute(ctx context.Context, input PayCardInput) (*PayCardOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainError.NewCardError(
			domainError.ErrCodeInvalidPaymentAmount,
			"payment amount must be positive",
			domainError.ErrInvalidPaymentAmount,
		)
	}

	card, err := u.cardRepo.FindByID(ctx, input.CardID)
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
	if input.Amount.GreaterThan(card.Balance) {
		return nil, domainError.NewCardError(
			domainError.ErrCodePaymentExceedsBalance,
			"payment exceeds card balance",
			domainError.ErrPaymentExceedsBalance,
		)
	}

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if input.Amount.GreaterThan(settings.TotalSavings) {
		return nil, domainError.NewCardError(
			domainError.ErrCodePaymentExceedsSavings,
			"payment exceeds total savings",
			domainError.ErrPaymentExceedsSavings,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	payment := entity.NewTransaction(
		entity.TransactionTypeCreditCardPayment,
		input.Amount,
		entity.CreditCardPaymentCategoryName,
		"Payment for "+card.Name,
		entity.PaymentMethodBank,
		&card.ID,
		date,
	)
	if err := u.transactionRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	card.Balance = reconciliation.ApplyAdd(card.Balance, payment)
	card.UpdatedAt = time.Now().UTC()
	if err := u.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}

	return &PayCardOutput{Transaction: payment, Card: card}, nil
}
