package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
type SubscriptionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency     string          `gorm:"type:varchar(20);not null"`
	Category      string          `gorm:"type:varchar(100)"`
	PaymentMethod string          `gorm:"type:varchar(20)"`
	CardID        *uuid.UUID      `gorm:"type:uuid"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	Active        bool            `gorm:"not null;default:true;index"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:            m.ID,
		Name:          m.Name,
		Amount:        m.Amount,
		Frequency:     entity.SubscriptionFrequency(m.Frequency),
		Category:      m.Category,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		CardID:        m.CardID,
		StartDate:     entity.TruncateDate(m.StartDate),
		Active:        m.Active,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SubscriptionFromEntity converts a domain Subscription entity to a SubscriptionModel.
func SubscriptionFromEntity(s *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:            s.ID,
		Name:          s.Name,
		Amount:        s.Amount,
		Frequency:     string(s.Frequency),
		Category:      s.Category,
		PaymentMethod: string(s.PaymentMethod),
		CardID:        s.CardID,
		StartDate:     s.StartDate,
		Active:        s.Active,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
