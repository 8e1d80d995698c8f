// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents a non-liquid asset counted toward net worth.
type Asset struct {
	ID          uuid.UUID
	Name        string
	Value       decimal.Decimal
	LastUpdated time.Time // Stamped on every mutation
	CreatedAt   time.Time
}

// NewAsset creates a new Asset entity.
func NewAsset(name string, value decimal.Decimal) *Asset {
	now := time.Now().UTC()

	return &Asset{
		ID:          uuid.New(),
		Name:        name,
		Value:       value,
		LastUpdated: now,
		CreatedAt:   now,
	}
}
