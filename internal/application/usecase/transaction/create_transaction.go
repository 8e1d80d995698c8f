package transaction

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/reconciliation"
	"github.com/pocketledger/backend/internal/application/usecase/savings"
	"github.com/pocketledger/backend/internal/domain/entity"
)

type CreateTransactionInput struct {
	TransactionInput
}

type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase records a transaction and applies its incremental
// side effects: card balance for card-linked entries, savings pool for income.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CardRepository
	settingsRepo    adapter.SettingsRepository
}

func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CardRepository,
	settingsRepo adapter.SettingsRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		settingsRepo:    settingsRepo,
	}
}

func (u *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateInput(input.TransactionInput); err != nil {
		return nil, err
	}
	card, err := resolveCard(ctx, u.cardRepo, input.TransactionInput)
	if err != nil {
		return nil, err
	}

	created := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.Category,
		input.Description,
		input.PaymentMethod,
		input.CardID,
		input.Date,
	)
	if err := u.transactionRepo.Create(ctx, created); err != nil {
		return nil, err
	}

	if card != nil {
		card.Balance = reconciliation.ApplyAdd(card.Balance, created)
		card.UpdatedAt = time.Now().UTC()
		if err := u.cardRepo.Update(ctx, card); err != nil {
			return nil, err
		}
	}

	if created.Type == entity.TransactionTypeIncome {
		settings, err := u.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		settings.TotalSavings = savings.ApplyAdd(settings.TotalSavings, created)
		settings.UpdatedAt = time.Now().UTC()
		if err := u.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return &CreateTransactionOutput{Transaction: created}, nil
}
