package dto

import (
	"github.com/pocketledger/backend/internal/domain/entity"
)

// SettingsUpdateRequestDTO carries a shallow-merge settings update. Absent
// fields keep their stored values.
type SettingsUpdateRequestDTO struct {
	PrivacyMode   *bool    `json:"privacy_mode,omitempty"`
	UserName      *string  `json:"user_name,omitempty"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty"`
	TotalSavings  *float64 `json:"total_savings,omitempty"`
	Theme         *string  `json:"theme,omitempty"`
}

// SettingsResponseDTO represents the settings singleton in API responses.
type SettingsResponseDTO struct {
	PrivacyMode   bool   `json:"privacy_mode"`
	UserName      string `json:"user_name"`
	MonthlyIncome string `json:"monthly_income"`
	TotalSavings  string `json:"total_savings"`
	Theme         string `json:"theme"`
}

// ToSettingsResponse converts a domain Settings entity to a response DTO.
func ToSettingsResponse(s *entity.Settings) SettingsResponseDTO {
	return SettingsResponseDTO{
		PrivacyMode:   s.PrivacyMode,
		UserName:      s.UserName,
		MonthlyIncome: s.MonthlyIncome.String(),
		TotalSavings:  s.TotalSavings.String(),
		Theme:         s.Theme,
	}
}
