// Package reconciliation contains the credit card balance reconciliation engine.
//
// A card's balance is always derivable from the full transaction history:
// balance = max(0, sum of its expenses - sum of its payments). The full
// recompute is the system's self-healing mechanism; the incremental deltas
// keep balances current between recomputes without an O(n) pass per mutation.
package reconciliation

import (
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// RecalculateBalances recomputes each card's balance from the complete
// transaction history. It is a pure function over its inputs, idempotent,
// and returns fresh card values; input cards are not mutated. Archived cards
// are recomputed too so their balance history stays intact.
func RecalculateBalances(transactions []*entity.Transaction, cards []*entity.CreditCard) []*entity.CreditCard {
	expenses := make(map[string]decimal.Decimal, len(cards))
	payments := make(map[string]decimal.Decimal, len(cards))

	for _, t := range transactions {
		if t.CardID == nil {
			continue
		}
		key := t.CardID.String()
		switch t.Type {
		case entity.TransactionTypeExpense:
			expenses[key] = expenses[key].Add(t.Amount)
		case entity.TransactionTypeCreditCardPayment:
			payments[key] = payments[key].Add(t.Amount)
		}
	}

	result := make([]*entity.CreditCard, len(cards))
	for i, card := range cards {
		recalculated := *card
		key := card.ID.String()
		balance := expenses[key].Sub(payments[key])
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		recalculated.Balance = balance
		result[i] = &recalculated
	}
	return result
}

// ApplyAdd returns the card balance after a transaction is added.
// Expenses raise the balance; payments lower it, floored at zero.
func ApplyAdd(balance decimal.Decimal, t *entity.Transaction) decimal.Decimal {
	switch t.Type {
	case entity.TransactionTypeExpense:
		return balance.Add(t.Amount)
	case entity.TransactionTypeCreditCardPayment:
		next := balance.Sub(t.Amount)
		if next.IsNegative() {
			return decimal.Zero
		}
		return next
	}
	return balance
}

// ApplyRemove returns the card balance after a transaction is deleted.
// It is the inverse of ApplyAdd, subject to the same zero floor.
func ApplyRemove(balance decimal.Decimal, t *entity.Transaction) decimal.Decimal {
	switch t.Type {
	case entity.TransactionTypeExpense:
		next := balance.Sub(t.Amount)
		if next.IsNegative() {
			return decimal.Zero
		}
		return next
	case entity.TransactionTypeCreditCardPayment:
		return balance.Add(t.Amount)
	}
	return balance
}
