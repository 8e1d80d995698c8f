package dto

import (
	"github.com/pocketledger/backend/internal/domain/entity"
)

// TransactionRequestDTO represents the request body for creating or updating
// a transaction.
type TransactionRequestDTO struct {
	Type          string  `json:"type" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	CardID        *string `json:"card_id,omitempty"`
	Date          string  `json:"date" binding:"required"` // Format: "YYYY-MM-DD"
}

// TransactionResponseDTO represents a transaction in API responses.
type TransactionResponseDTO struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Amount        string  `json:"amount"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"payment_method"`
	CardID        *string `json:"card_id,omitempty"`
	Date          string  `json:"date"`
}

// TransactionListResponseDTO represents a transaction listing.
type TransactionListResponseDTO struct {
	Transactions []TransactionResponseDTO `json:"transactions"`
	Total        int                      `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to a response DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponseDTO {
	var cardID *string
	if t.CardID != nil {
		s := t.CardID.String()
		cardID = &s
	}
	return TransactionResponseDTO{
		ID:            t.ID.String(),
		Type:          string(t.Type),
		Amount:        t.Amount.String(),
		Category:      t.Category,
		Description:   t.Description,
		PaymentMethod: string(t.PaymentMethod),
		CardID:        cardID,
		Date:          t.DateString(),
	}
}
