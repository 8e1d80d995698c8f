package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/reconciliation"
	"github.com/pocketledger/backend/internal/application/usecase/savings"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type UpdateTransactionInput struct {
	ID uuid.UUID
	TransactionInput
}

type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase edits a transaction as remove-then-add: the old
// entry's side effects are reversed and the new entry's are applied, so an
// edit lands on the same balances a delete plus create would.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CardRepository
	settingsRepo    adapter.SettingsRepository
}

func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CardRepository,
	settingsRepo adapter.SettingsRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		settingsRepo:    settingsRepo,
	}
}

func (u *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateInput(input.TransactionInput); err != nil {
		return nil, err
	}

	existing, err := u.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domainError.NewTransactionError(
			domainError.ErrCodeTransactionNotFound,
			"transaction not found",
			domainError.ErrTransactionNotFound,
		)
	}

	card, err := resolveCard(ctx, u.cardRepo, input.TransactionInput)
	if err != nil {
		return nil, err
	}

	if err := reverseSideEffects(ctx, u.cardRepo, u.settingsRepo, existing); err != nil {
		return nil, err
	}

	updated := &entity.Transaction{
		ID:            existing.ID,
		Type:          input.Type,
		Amount:        input.Amount,
		Category:      input.Category,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		CardID:        input.CardID,
		Date:          entity.TruncateDate(input.Date),
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := u.transactionRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if card != nil {
		// Re-read in case the reversal above already touched this card.
		card, err = u.cardRepo.FindByID(ctx, *input.CardID)
		if err != nil {
			return nil, err
		}
		if card != nil {
			card.Balance = reconciliation.ApplyAdd(card.Balance, updated)
			card.UpdatedAt = time.Now().UTC()
			if err := u.cardRepo.Update(ctx, card); err != nil {
				return nil, err
			}
		}
	}

	if updated.Type == entity.TransactionTypeIncome {
		settings, err := u.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		settings.TotalSavings = savings.ApplyAdd(settings.TotalSavings, updated)
		settings.UpdatedAt = time.Now().UTC()
		if err := u.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return &UpdateTransactionOutput{Transaction: updated}, nil
}
