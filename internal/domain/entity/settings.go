// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the singleton application settings record. TotalSavings is the
// single liquid-cash pool that funds every goal; it may go negative.
type Settings struct {
	PrivacyMode   bool
	UserName      string
	MonthlyIncome decimal.Decimal
	TotalSavings  decimal.Decimal
	Theme         string
	UpdatedAt     time.Time
}

// DefaultSettings returns the settings record for a fresh install.
func DefaultSettings() *Settings {
	return &Settings{
		PrivacyMode:   false,
		UserName:      "User",
		MonthlyIncome: decimal.Zero,
		TotalSavings:  decimal.Zero,
		Theme:         "dark",
		UpdatedAt:     time.Now().UTC(),
	}
}

// SettingsPatch carries a shallow-merge update for the settings singleton.
// Nil fields are left untouched.
type SettingsPatch struct {
	PrivacyMode   *bool
	UserName      *string
	MonthlyIncome *decimal.Decimal
	TotalSavings  *decimal.Decimal
	Theme         *string
}

// Apply merges the patch into the settings record.
func (p SettingsPatch) Apply(s *Settings) {
	if p.PrivacyMode != nil {
		s.PrivacyMode = *p.PrivacyMode
	}
	if p.UserName != nil {
		s.UserName = *p.UserName
	}
	if p.MonthlyIncome != nil {
		s.MonthlyIncome = *p.MonthlyIncome
	}
	if p.TotalSavings != nil {
		s.TotalSavings = *p.TotalSavings
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	s.UpdatedAt = time.Now().UTC()
}
