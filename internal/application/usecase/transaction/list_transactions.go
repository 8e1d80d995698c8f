package transaction

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// ListTransactionsInput narrows the listing. Zero-valued filters are ignored.
type ListTransactionsInput struct {
	Month    string // "2006-01" prefix match on the transaction date
	Type     entity.TransactionType
	Category string
	CardID   *uuid.UUID
}

type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

func (u *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	all, err := u.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Transaction, 0, len(all))
	for _, t := range all {
		if input.Month != "" && t.Date.Format("2006-01") != input.Month {
			continue
		}
		if input.Type != "" && t.Type != input.Type {
			continue
		}
		if input.Category != "" && t.Category != input.Category {
			continue
		}
		if input.CardID != nil && (t.CardID == nil || *t.CardID != *input.CardID) {
			continue
		}
		filtered = append(filtered, t)
	}

	// Newest first, creation order as tiebreak for same-day entries.
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].Date.After(filtered[j].Date)
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return &ListTransactionsOutput{Transactions: filtered}, nil
}
