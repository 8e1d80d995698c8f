// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionFrequency represents how often a subscription is billed.
type SubscriptionFrequency string

const (
	FrequencyMonthly      SubscriptionFrequency = "monthly"
	FrequencyQuarterly    SubscriptionFrequency = "quarterly"
	FrequencySemiAnnually SubscriptionFrequency = "semi-annually"
	FrequencyAnnually     SubscriptionFrequency = "annually"
)

// Subscription represents a recurring cost. Subscriptions are informational:
// they never generate transactions themselves.
type Subscription struct {
	ID            uuid.UUID
	Name          string
	Amount        decimal.Decimal
	Frequency     SubscriptionFrequency
	Category      string
	PaymentMethod PaymentMethod
	CardID        *uuid.UUID
	StartDate     time.Time
	Active        bool
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSubscription creates a new Subscription entity.
func NewSubscription(
	name string,
	amount decimal.Decimal,
	frequency SubscriptionFrequency,
	category string,
	paymentMethod PaymentMethod,
	cardID *uuid.UUID,
	startDate time.Time,
	notes string,
) *Subscription {
	now := time.Now().UTC()

	return &Subscription{
		ID:            uuid.New(),
		Name:          name,
		Amount:        amount,
		Frequency:     frequency,
		Category:      category,
		PaymentMethod: paymentMethod,
		CardID:        cardID,
		StartDate:     TruncateDate(startDate),
		Active:        true,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MonthlyEquivalent returns the subscription cost normalized to a monthly
// amount.
func (s *Subscription) MonthlyEquivalent() decimal.Decimal {
	switch s.Frequency {
	case FrequencyQuarterly:
		return s.Amount.Div(decimal.NewFromInt(3))
	case FrequencySemiAnnually:
		return s.Amount.Div(decimal.NewFromInt(6))
	case FrequencyAnnually:
		return s.Amount.Div(decimal.NewFromInt(12))
	default:
		return s.Amount
	}
}

// IsValidSubscriptionFrequency reports whether the frequency is supported.
func IsValidSubscriptionFrequency(f SubscriptionFrequency) bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencySemiAnnually, FrequencyAnnually:
		return true
	}
	return false
}
