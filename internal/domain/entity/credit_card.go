// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCard represents a credit card and its outstanding balance.
// Balance is derived from the transaction history and is never authored
// directly by the user; it is maintained by the reconciliation engine.
type CreditCard struct {
	ID        uuid.UUID
	Name      string
	Limit     decimal.Decimal
	Balance   decimal.Decimal
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCreditCard creates a new CreditCard entity with a zero balance.
func NewCreditCard(name string, limit decimal.Decimal) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:        uuid.New(),
		Name:      name,
		Limit:     limit,
		Balance:   decimal.Zero,
		Archived:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Utilization returns the balance as a percentage of the limit, or zero when
// the card has no limit set.
func (c *CreditCard) Utilization() decimal.Decimal {
	if c.Limit.IsZero() {
		return decimal.Zero
	}
	return c.Balance.Div(c.Limit).Mul(decimal.NewFromInt(100))
}
