package goal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// AggregateOutput is the dashboard-level view across every goal.
type AggregateOutput struct {
	// CombinedRequiredMonthly sums requiredMonthly over goals that still
	// have a live savings window (not achieved, not overdue).
	CombinedRequiredMonthly decimal.Decimal

	// MonthNetFlow is this month's income minus expenses.
	MonthNetFlow decimal.Decimal

	// OnTrackRatio is MonthNetFlow / CombinedRequiredMonthly, unclamped.
	OnTrackRatio decimal.Decimal

	// OnTrackPercent is the ratio as a percentage clamped to [0, 100].
	OnTrackPercent decimal.Decimal
}

// AggregateGoalsUseCase compares the combined monthly savings target across
// all live goals against this month's actual net cash flow.
type AggregateGoalsUseCase struct {
	goalRepo        adapter.GoalRepository
	settingsRepo    adapter.SettingsRepository
	transactionRepo adapter.TransactionRepository
}

func NewAggregateGoalsUseCase(
	goalRepo adapter.GoalRepository,
	settingsRepo adapter.SettingsRepository,
	transactionRepo adapter.TransactionRepository,
) *AggregateGoalsUseCase {
	return &AggregateGoalsUseCase{
		goalRepo:        goalRepo,
		settingsRepo:    settingsRepo,
		transactionRepo: transactionRepo,
	}
}

func (u *AggregateGoalsUseCase) Execute(ctx context.Context) (*AggregateOutput, error) {
	goals, err := u.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := u.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return computeAggregate(goals, settings, transactions, time.Now()), nil
}

func computeAggregate(
	goals []*entity.Goal,
	settings *entity.Settings,
	transactions []*entity.Transaction,
	now time.Time,
) *AggregateOutput {
	combined := decimal.Zero
	for _, g := range goals {
		p := Project(g, settings, now)
		if p.Status == StatusAchieved || p.Status == StatusOverdue {
			continue
		}
		combined = combined.Add(p.RequiredMonthly)
	}

	month := now.Format("2006-01")
	netFlow := decimal.Zero
	for _, t := range transactions {
		if t.Date.Format("2006-01") != month {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			netFlow = netFlow.Add(t.Amount)
		case entity.TransactionTypeExpense:
			netFlow = netFlow.Sub(t.Amount)
		}
	}

	out := &AggregateOutput{
		CombinedRequiredMonthly: combined,
		MonthNetFlow:            netFlow,
	}
	if combined.IsPositive() {
		out.OnTrackRatio = netFlow.Div(combined)
		percent := out.OnTrackRatio.Mul(decimal.NewFromInt(100))
		if percent.IsNegative() {
			percent = decimal.Zero
		}
		if percent.GreaterThan(decimal.NewFromInt(100)) {
			percent = decimal.NewFromInt(100)
		}
		out.OnTrackPercent = percent
	} else {
		// Nothing left to save toward; fully on track.
		out.OnTrackRatio = decimal.NewFromInt(1)
		out.OnTrackPercent = decimal.NewFromInt(100)
	}
	return out
}
