package subscription

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// SummaryOutput rolls active subscriptions up to comparable cost figures.
type SummaryOutput struct {
	ActiveCount    int
	MonthlyTotal   decimal.Decimal // Sum of monthly equivalents
	QuarterlyTotal decimal.Decimal
	AnnualTotal    decimal.Decimal
}

type SummaryUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

func NewSummaryUseCase(subscriptionRepo adapter.SubscriptionRepository) *SummaryUseCase {
	return &SummaryUseCase{subscriptionRepo: subscriptionRepo}
}

func (u *SummaryUseCase) Execute(ctx context.Context) (*SummaryOutput, error) {
	subscriptions, err := u.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &SummaryOutput{}
	for _, s := range subscriptions {
		if !s.Active {
			continue
		}
		out.ActiveCount++
		out.MonthlyTotal = out.MonthlyTotal.Add(s.MonthlyEquivalent())
	}
	out.QuarterlyTotal = out.MonthlyTotal.Mul(decimal.NewFromInt(3))
	out.AnnualTotal = out.MonthlyTotal.Mul(decimal.NewFromInt(12))
	return out, nil
}
