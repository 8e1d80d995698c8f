package dto

import (
	"github.com/pocketledger/backend/internal/domain/entity"
)

// SubscriptionRequestDTO represents the request body for creating or
// updating a subscription.
type SubscriptionRequestDTO struct {
	Name          string  `json:"name" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Frequency     string  `json:"frequency" binding:"required"`
	Category      string  `json:"category"`
	PaymentMethod string  `json:"payment_method"`
	CardID        *string `json:"card_id,omitempty"`
	StartDate     string  `json:"start_date" binding:"required"` // Format: "YYYY-MM-DD"
	Active        bool    `json:"active"`
	Notes         string  `json:"notes"`
}

// SubscriptionResponseDTO represents a subscription in API responses.
type SubscriptionResponseDTO struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Amount            string  `json:"amount"`
	Frequency         string  `json:"frequency"`
	MonthlyEquivalent string  `json:"monthly_equivalent"`
	Category          string  `json:"category"`
	PaymentMethod     string  `json:"payment_method"`
	CardID            *string `json:"card_id,omitempty"`
	StartDate         string  `json:"start_date"`
	Active            bool    `json:"active"`
	Notes             string  `json:"notes,omitempty"`
}

// SubscriptionListResponseDTO represents a subscription listing.
type SubscriptionListResponseDTO struct {
	Subscriptions []SubscriptionResponseDTO `json:"subscriptions"`
}

// SubscriptionSummaryResponseDTO represents the recurring-cost rollup.
type SubscriptionSummaryResponseDTO struct {
	ActiveCount    int    `json:"active_count"`
	MonthlyTotal   string `json:"monthly_total"`
	QuarterlyTotal string `json:"quarterly_total"`
	AnnualTotal    string `json:"annual_total"`
}

// ToSubscriptionResponse converts a domain Subscription entity to a response DTO.
func ToSubscriptionResponse(s *entity.Subscription) SubscriptionResponseDTO {
	var cardID *string
	if s.CardID != nil {
		id := s.CardID.String()
		cardID = &id
	}
	return SubscriptionResponseDTO{
		ID:                s.ID.String(),
		Name:              s.Name,
		Amount:            s.Amount.String(),
		Frequency:         string(s.Frequency),
		MonthlyEquivalent: s.MonthlyEquivalent().StringFixed(2),
		Category:          s.Category,
		PaymentMethod:     string(s.PaymentMethod),
		CardID:            cardID,
		StartDate:         s.StartDate.Format(entity.DateLayout),
		Active:            s.Active,
		Notes:             s.Notes,
	}
}
