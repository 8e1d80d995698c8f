package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// settingsRowID is the fixed primary key of the settings singleton row.
const settingsRowID = 1

// SettingsModel represents the single-row settings table in the database.
type SettingsModel struct {
	ID            int             `gorm:"primaryKey"`
	PrivacyMode   bool            `gorm:"not null;default:false"`
	UserName      string          `gorm:"type:varchar(100);not null"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalSavings  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Theme         string          `gorm:"type:varchar(20);not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		PrivacyMode:   m.PrivacyMode,
		UserName:      m.UserName,
		MonthlyIncome: m.MonthlyIncome,
		TotalSavings:  m.TotalSavings,
		Theme:         m.Theme,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SettingsFromEntity converts a domain Settings entity to a SettingsModel.
func SettingsFromEntity(s *entity.Settings) *SettingsModel {
	return &SettingsModel{
		ID:            settingsRowID,
		PrivacyMode:   s.PrivacyMode,
		UserName:      s.UserName,
		MonthlyIncome: s.MonthlyIncome,
		TotalSavings:  s.TotalSavings,
		Theme:         s.Theme,
		UpdatedAt:     s.UpdatedAt,
	}
}
