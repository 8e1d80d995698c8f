// Package savings contains the savings pool and net worth aggregation logic.
//
// TotalSavings is the single liquid-cash pool. Only income transactions move
// it: an expense already reduced purchasing power when it happened, and a
// card payment merely settles a liability, so neither touches the pool.
package savings

import (
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// ApplyAdd returns the savings pool after a transaction is added.
func ApplyAdd(totalSavings decimal.Decimal, t *entity.Transaction) decimal.Decimal {
	if t.Type == entity.TransactionTypeIncome {
		return totalSavings.Add(t.Amount)
	}
	return totalSavings
}

// ApplyRemove returns the savings pool after a transaction is deleted.
func ApplyRemove(totalSavings decimal.Decimal, t *entity.Transaction) decimal.Decimal {
	if t.Type == entity.TransactionTypeIncome {
		return totalSavings.Sub(t.Amount)
	}
	return totalSavings
}

// NetWorth computes liquid savings plus asset values minus active card
// liabilities. Archived cards are excluded.
func NetWorth(settings *entity.Settings, assets []*entity.Asset, cards []*entity.CreditCard) decimal.Decimal {
	total := settings.TotalSavings
	for _, a := range assets {
		total = total.Add(a.Value)
	}
	for _, c := range cards {
		if c.Archived {
			continue
		}
		total = total.Sub(c.Balance)
	}
	return total
}
