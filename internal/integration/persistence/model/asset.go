package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// AssetModel represents the assets table in the database.
type AssetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Value       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	LastUpdated time.Time       `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AssetModel.
func (AssetModel) TableName() string {
	return "assets"
}

// ToEntity converts an AssetModel to a domain Asset entity.
func (m *AssetModel) ToEntity() *entity.Asset {
	return &entity.Asset{
		ID:          m.ID,
		Name:        m.Name,
		Value:       m.Value,
		LastUpdated: m.LastUpdated,
		CreatedAt:   m.CreatedAt,
	}
}

// AssetFromEntity converts a domain Asset entity to an AssetModel.
func AssetFromEntity(a *entity.Asset) *AssetModel {
	return &AssetModel{
		ID:          a.ID,
		Name:        a.Name,
		Value:       a.Value,
		LastUpdated: a.LastUpdated,
		CreatedAt:   a.CreatedAt,
	}
}
