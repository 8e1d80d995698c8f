// Package reconciliation contains the credit card balance reconciliation engine.
package reconciliation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// RunReconciliationOutput reports the result of a full reconciliation pass.
type RunReconciliationOutput struct {
	CardsChecked   int
	CardsCorrected int
}

// RunReconciliationUseCase performs the full balance recompute against the
// store. It runs once at application start and after any bulk import or
// snapshot restore; re-running it is always safe.
type RunReconciliationUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CardRepository
}

// NewRunReconciliationUseCase creates a new RunReconciliationUseCase instance.
func NewRunReconciliationUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CardRepository,
) *RunReconciliationUseCase {
	return &RunReconciliationUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
	}
}

// Execute recomputes every card balance from the transaction log and persists
// only the cards whose stored balance had drifted.
func (uc *RunReconciliationUseCase) Execute(ctx context.Context) (*RunReconciliationOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	cards, err := uc.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	recalculated := RecalculateBalances(transactions, cards)

	corrected := 0
	for i, card := range recalculated {
		if card.Balance.Equal(cards[i].Balance) {
			continue
		}
		slog.Info("Correcting drifted card balance",
			"card", card.Name,
			"stored", cards[i].Balance,
			"recalculated", card.Balance,
		)
		if err := uc.cardRepo.Update(ctx, card); err != nil {
			return nil, fmt.Errorf("failed to persist reconciled balance for %s: %w", card.Name, err)
		}
		corrected++
	}

	return &RunReconciliationOutput{
		CardsChecked:   len(cards),
		CardsCorrected: corrected,
	}, nil
}
