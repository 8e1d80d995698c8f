package dto

import (
	"github.com/pocketledger/backend/internal/domain/entity"
)

// CategoryRequestDTO represents the request body for creating a category.
type CategoryRequestDTO struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Emoji string `json:"emoji"`
}

// CategoryUpdateRequestDTO represents a rename / emoji change.
type CategoryUpdateRequestDTO struct {
	Name  string `json:"name" binding:"required"`
	Emoji string `json:"emoji"`
}

// CategoryReorderRequestDTO swaps the display order of two categories.
type CategoryReorderRequestDTO struct {
	FirstID  string `json:"first_id" binding:"required"`
	SecondID string `json:"second_id" binding:"required"`
}

// CategoryResponseDTO represents a category in API responses.
type CategoryResponseDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
	Order int    `json:"order"`
}

// CategoryListResponseDTO represents a category listing.
type CategoryListResponseDTO struct {
	Categories []CategoryResponseDTO `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a response DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponseDTO {
	return CategoryResponseDTO{
		ID:    c.ID.String(),
		Name:  c.Name,
		Type:  string(c.Type),
		Emoji: c.Emoji,
		Order: c.Order,
	}
}
