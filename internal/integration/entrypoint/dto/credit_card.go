package dto

import (
	"github.com/pocketledger/backend/internal/domain/entity"
)

// CardRequestDTO represents the request body for creating or updating a card.
// Balance is derived and deliberately absent.
type CardRequestDTO struct {
	Name  string  `json:"name" binding:"required"`
	Limit float64 `json:"limit"`
}

// CardArchiveRequestDTO toggles a card's archived flag.
type CardArchiveRequestDTO struct {
	Archived bool `json:"archived"`
}

// PayCardRequestDTO represents a card payoff request.
type PayCardRequestDTO struct {
	Amount float64 `json:"amount" binding:"required"`
	Date   string  `json:"date"` // Optional, format: "YYYY-MM-DD"
}

// CardResponseDTO represents a credit card in API responses.
type CardResponseDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Limit       string `json:"limit"`
	Balance     string `json:"balance"`
	Utilization string `json:"utilization"`
	Archived    bool   `json:"archived"`
}

// CardListResponseDTO represents a card listing.
type CardListResponseDTO struct {
	Cards []CardResponseDTO `json:"cards"`
}

// PayCardResponseDTO represents the result of a card payoff.
type PayCardResponseDTO struct {
	Transaction TransactionResponseDTO `json:"transaction"`
	Card        CardResponseDTO        `json:"card"`
}

// ToCardResponse converts a domain CreditCard entity to a response DTO.
func ToCardResponse(c *entity.CreditCard) CardResponseDTO {
	return CardResponseDTO{
		ID:          c.ID.String(),
		Name:        c.Name,
		Limit:       c.Limit.String(),
		Balance:     c.Balance.String(),
		Utilization: c.Utilization().StringFixed(1),
		Archived:    c.Archived,
	}
}
