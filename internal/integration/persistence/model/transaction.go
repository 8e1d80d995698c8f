// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type          string          `gorm:"type:varchar(20);not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category      string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:varchar(255)"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	CardID        *uuid.UUID      `gorm:"type:uuid;index"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		Category:      m.Category,
		Description:   m.Description,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		CardID:        m.CardID,
		Date:          entity.TruncateDate(m.Date),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            t.ID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Category:      t.Category,
		Description:   t.Description,
		PaymentMethod: string(t.PaymentMethod),
		CardID:        t.CardID,
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
