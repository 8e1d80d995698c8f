package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name_type"`
	Type         string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_name_type"`
	Emoji        string    `gorm:"type:varchar(20)"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Type:      entity.CategoryType(m.Type),
		Emoji:     m.Emoji,
		Order:     m.DisplayOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity converts a domain Category entity to a CategoryModel.
func CategoryFromEntity(c *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:           c.ID,
		Name:         c.Name,
		Type:         string(c.Type),
		Emoji:        c.Emoji,
		DisplayOrder: c.Order,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
