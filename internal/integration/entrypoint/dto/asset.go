package dto

import (
	"time"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// AssetRequestDTO represents the request body for creating or updating an asset.
type AssetRequestDTO struct {
	Name  string  `json:"name" binding:"required"`
	Value float64 `json:"value"`
}

// AssetResponseDTO represents an asset in API responses.
type AssetResponseDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Value       string    `json:"value"`
	LastUpdated time.Time `json:"last_updated"`
}

// AssetListResponseDTO represents an asset listing.
type AssetListResponseDTO struct {
	Assets []AssetResponseDTO `json:"assets"`
}

// NetWorthResponseDTO represents the net worth breakdown.
type NetWorthResponseDTO struct {
	TotalSavings    string `json:"total_savings"`
	AssetsTotal     string `json:"assets_total"`
	CardLiabilities string `json:"card_liabilities"`
	NetWorth        string `json:"net_worth"`
}

// ToAssetResponse converts a domain Asset entity to a response DTO.
func ToAssetResponse(a *entity.Asset) AssetResponseDTO {
	return AssetResponseDTO{
		ID:          a.ID.String(),
		Name:        a.Name,
		Value:       a.Value.String(),
		LastUpdated: a.LastUpdated,
	}
}
