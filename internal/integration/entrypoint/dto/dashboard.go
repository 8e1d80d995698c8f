package dto

import (
	"github.com/pocketledger/backend/internal/application/usecase/dashboard"
)

// CategoryBreakdownDTO represents one category's expense total for a month.
type CategoryBreakdownDTO struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// DayFlowDTO represents one day's income and expense totals.
type DayFlowDTO struct {
	Date    string `json:"date"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// CardUtilizationDTO represents an active card's utilization.
type CardUtilizationDTO struct {
	Card        CardResponseDTO `json:"card"`
	Utilization string          `json:"utilization"`
}

// MonthSummaryResponseDTO represents the dashboard month view.
type MonthSummaryResponseDTO struct {
	Month      string                 `json:"month"`
	Income     string                 `json:"income"`
	Expense    string                 `json:"expense"`
	NetFlow    string                 `json:"net_flow"`
	ByCategory []CategoryBreakdownDTO `json:"by_category"`
	ByDay      []DayFlowDTO           `json:"by_day"`
	Cards      []CardUtilizationDTO   `json:"cards"`
}

// ToMonthSummaryResponse converts the month summary to its DTO form.
func ToMonthSummaryResponse(out *dashboard.MonthSummaryOutput) MonthSummaryResponseDTO {
	resp := MonthSummaryResponseDTO{
		Month:      out.Month,
		Income:     out.Income.StringFixed(2),
		Expense:    out.Expense.StringFixed(2),
		NetFlow:    out.NetFlow.StringFixed(2),
		ByCategory: make([]CategoryBreakdownDTO, len(out.ByCategory)),
		ByDay:      make([]DayFlowDTO, len(out.ByDay)),
		Cards:      make([]CardUtilizationDTO, len(out.Cards)),
	}
	for i, b := range out.ByCategory {
		resp.ByCategory[i] = CategoryBreakdownDTO{Category: b.Category, Total: b.Total.StringFixed(2)}
	}
	for i, d := range out.ByDay {
		resp.ByDay[i] = DayFlowDTO{Date: d.Date, Income: d.Income.StringFixed(2), Expense: d.Expense.StringFixed(2)}
	}
	for i, c := range out.Cards {
		resp.Cards[i] = CardUtilizationDTO{Card: ToCardResponse(c.Card), Utilization: c.Utilization.StringFixed(1)}
	}
	return resp
}
