// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal funded from the shared savings pool.
// Progress is never stored; it is derived from Settings.TotalSavings at
// read time by the projection calculator.
type Goal struct {
	ID           uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time // Calendar date
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(name string, targetAmount decimal.Decimal, deadline time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		Name:         name,
		TargetAmount: targetAmount,
		Deadline:     TruncateDate(deadline),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
