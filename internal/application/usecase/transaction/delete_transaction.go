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

type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase removes a transaction and reverses its side
// effects on card balance and savings.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CardRepository
	settingsRepo    adapter.SettingsRepository
}

func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CardRepository,
	settingsRepo adapter.SettingsRepository,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		settingsRepo:    settingsRepo,
	}
}

func (u *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	existing, err := u.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainError.NewTransactionError(
			domainError.ErrCodeTransactionNotFound,
			"transaction not found",
			domainError.ErrTransactionNotFound,
		)
	}

	if err := u.transactionRepo.Delete(ctx, input.ID); err != nil {
		return err
	}
	return reverseSideEffects(ctx, u.cardRepo, u.settingsRepo, existing)
}

// reverseSideEffects undoes what recording the transaction did to the card
// balance and the savings pool. A card deleted out from under its history is
// tolerated; the next reconciliation pass settles the rest.
func reverseSideEffects(
	ctx context.Context,
	cardRepo adapter.CardRepository,
	settingsRepo adapter.SettingsRepository,
	t *entity.Transaction,
) error {
	if t.CardID != nil {
		card, err := cardRepo.FindByID(ctx, *t.CardID)
		if err != nil {
			return err
		}
		if card != nil {
			card.Balance = reconciliation.ApplyRemove(card.Balance, t)
			card.UpdatedAt = time.Now().UTC()
			if err := cardRepo.Update(ctx, card); err != nil {
				return err
			}
		}
	}

	if t.Type == entity.TransactionTypeIncome {
		settings, err := settingsRepo.Get(ctx)
		if err != nil {
			return err
		}
		settings.TotalSavings = savings.ApplyRemove(settings.TotalSavings, t)
		settings.UpdatedAt = time.Now().UTC()
		if err := settingsRepo.Update(ctx, settings); err != nil {
			return err
		}
	}
	return nil
}
