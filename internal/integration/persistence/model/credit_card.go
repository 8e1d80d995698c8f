package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Archived    bool            `gorm:"not null;default:false;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:        m.ID,
		Name:      m.Name,
		Limit:     m.CreditLimit,
		Balance:   m.Balance,
		Archived:  m.Archived,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreditCardFromEntity converts a domain CreditCard entity to a CreditCardModel.
func CreditCardFromEntity(c *entity.CreditCard) *CreditCardModel {
	return &CreditCardModel{
		ID:          c.ID,
		Name:        c.Name,
		CreditLimit: c.Limit,
		Balance:     c.Balance,
		Archived:    c.Archived,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
