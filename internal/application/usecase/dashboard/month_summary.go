// Package dashboard derives the current-month summary view.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

type MonthSummaryInput struct {
	// Month in "2006-01" form; empty means the current month.
	Month string
}

type CategoryBreakdown struct {
	Category string
	Total    decimal.Decimal
}

type DayFlow struct {
	Date    string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

type CardUtilization struct {
	Card        *entity.CreditCard
	Utilization decimal.Decimal
}

type MonthSummaryOutput struct {
	Month      string
	Income     decimal.Decimal
	Expense    decimal.Decimal
	NetFlow    decimal.Decimal
	ByCategory []CategoryBreakdown
	ByDay      []DayFlow
	Cards      []CardUtilization
}

// MonthSummaryUseCase aggregates a month's transactions into the dashboard
// view: totals, per-category expense breakdown, per-day flow, and active
// card utilization.
type MonthSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CardRepository
}

func NewMonthSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CardRepository,
) *MonthSummaryUseCase {
	return &MonthSummaryUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
	}
}

func (u *MonthSummaryUseCase) Execute(ctx context.Context, input MonthSummaryInput) (*MonthSummaryOutput, error) {
	month := input.Month
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	transactions, err := u.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := u.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &MonthSummaryOutput{Month: month}
	byCategory := map[string]decimal.Decimal{}
	byDay := map[string]*DayFlow{}
	categoryOrder := []string{}
	dayOrder := []string{}

	for _, t := range transactions {
		if t.Date.Format("2006-01") != month {
			continue
		}
		day := t.DateString()
		flow, ok := byDay[day]
		if !ok {
			flow = &DayFlow{Date: day}
			byDay[day] = flow
			dayOrder = append(dayOrder, day)
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			out.Income = out.Income.Add(t.Amount)
			flow.Income = flow.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			out.Expense = out.Expense.Add(t.Amount)
			flow.Expense = flow.Expense.Add(t.Amount)
			if _, ok := byCategory[t.Category]; !ok {
				categoryOrder = append(categoryOrder, t.Category)
			}
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}
	out.NetFlow = out.Income.Sub(out.Expense)

	sort.Strings(categoryOrder)
	for _, name := range categoryOrder {
		out.ByCategory = append(out.ByCategory, CategoryBreakdown{Category: name, Total: byCategory[name]})
	}
	sort.Strings(dayOrder)
	for _, day := range dayOrder {
		out.ByDay = append(out.ByDay, *byDay[day])
	}

	for _, c := range cards {
		if c.Archived {
			continue
		}
		out.Cards = append(out.Cards, CardUtilization{Card: c, Utilization: c.Utilization()})
	}
	return out, nil
}
