// Package goal contains the savings goal use cases and the projection
// calculator that derives progress from the shared savings pool.
package goal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// GoalStatus classifies how realistic a goal is against monthly income.
type GoalStatus string

const (
	StatusAchieved  GoalStatus = "achieved"
	StatusOverdue   GoalStatus = "overdue"
	StatusAtRisk    GoalStatus = "at_risk"
	StatusAmbitious GoalStatus = "ambitious"
	StatusOnTrack   GoalStatus = "on_track"
)

// daysPerMonth is the mean Gregorian month length used to turn day counts
// into month counts.
var daysPerMonth = decimal.NewFromFloat(30.44)

// maxProjectionDays caps the projection window at ten years so far-future
// deadlines do not produce near-zero monthly figures.
const maxProjectionDays = 3650

// overdueSpreadMonths is the fallback window for goals whose deadline has
// already passed.
var overdueSpreadMonths = decimal.NewFromInt(12)

// Projection is the derived state of a single goal at a point in time.
type Projection struct {
	Remaining       decimal.Decimal
	DaysLeft        int
	MonthsLeft      decimal.Decimal
	RequiredMonthly decimal.Decimal
	RequiredDaily   decimal.Decimal
	Status          GoalStatus
	Explanation     string
	Recommendations []string
}

// Project derives a goal's remaining amount, required savings rate, and
// status from the current savings pool and monthly income.
//
// Remaining is floored at zero. An achieved goal carries no rate figures.
// An overdue goal spreads the remainder over twelve months as a suggestion
// since no valid window remains. Otherwise the window is daysLeft converted
// to months, floored at one month and capped at ten years.
func Project(g *entity.Goal, settings *entity.Settings, today time.Time) Projection {
	remaining := g.TargetAmount.Sub(settings.TotalSavings)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	daysLeft := int(entity.TruncateDate(g.Deadline).Sub(entity.TruncateDate(today)).Hours() / 24)

	if remaining.IsZero() {
		return Projection{
			Remaining:       decimal.Zero,
			DaysLeft:        daysLeft,
			Status:          StatusAchieved,
			Explanation:     fmt.Sprintf("You have already saved enough for %s.", g.Name),
			Recommendations: []string{"Consider setting a new goal or raising the target."},
		}
	}

	if daysLeft <= 0 {
		requiredMonthly := remaining.Div(overdueSpreadMonths)
		return Projection{
			Remaining:       remaining,
			DaysLeft:        daysLeft,
			MonthsLeft:      overdueSpreadMonths,
			RequiredMonthly: requiredMonthly,
			RequiredDaily:   requiredMonthly.Div(daysPerMonth),
			Status:          StatusOverdue,
			Explanation: fmt.Sprintf(
				"The deadline for %s has passed with %s still to save.",
				g.Name, remaining.StringFixed(2),
			),
			Recommendations: overdueRecommendations(g, settings, remaining),
		}
	}

	cappedDays := daysLeft
	if cappedDays > maxProjectionDays {
		cappedDays = maxProjectionDays
	}
	monthsLeft := decimal.NewFromInt(int64(cappedDays)).Div(daysPerMonth)
	if monthsLeft.LessThan(decimal.NewFromInt(1)) {
		monthsLeft = decimal.NewFromInt(1)
	}
	requiredMonthly := remaining.Div(monthsLeft)
	requiredDaily := requiredMonthly.Div(daysPerMonth)
	status := classify(requiredMonthly, settings.MonthlyIncome)

	return Projection{
		Remaining:       remaining,
		DaysLeft:        daysLeft,
		MonthsLeft:      monthsLeft,
		RequiredMonthly: requiredMonthly,
		RequiredDaily:   requiredDaily,
		Status:          status,
		Explanation: fmt.Sprintf(
			"Save %s per month (%s per day) to reach %s on time.",
			requiredMonthly.StringFixed(2), requiredDaily.StringFixed(2), g.Name,
		),
		Recommendations: activeRecommendations(status, requiredMonthly, settings.MonthlyIncome),
	}
}

// classify rates the required monthly amount against income. With no income
// on record there is not enough data to flag risk, so the goal stays on
// track.
func classify(requiredMonthly, monthlyIncome decimal.Decimal) GoalStatus {
	if !monthlyIncome.IsPositive() {
		return StatusOnTrack
	}
	if requiredMonthly.GreaterThan(monthlyIncome) {
		return StatusAtRisk
	}
	if requiredMonthly.GreaterThan(monthlyIncome.Div(decimal.NewFromInt(2))) {
		return StatusAmbitious
	}
	return StatusOnTrack
}

func overdueRecommendations(g *entity.Goal, settings *entity.Settings, remaining decimal.Decimal) []string {
	recs := []string{}
	if settings.MonthlyIncome.IsPositive() {
		// Months needed to close the gap saving half the income each month.
		halfIncome := settings.MonthlyIncome.Div(decimal.NewFromInt(2))
		months := remaining.Div(halfIncome).Ceil()
		recs = append(recs, fmt.Sprintf(
			"Extend the deadline by %s months to stay within half your income.",
			months.String(),
		))
	} else {
		recs = append(recs, "Extend the deadline to restore a savings window.")
	}
	if settings.TotalSavings.IsPositive() {
		percent := settings.TotalSavings.
			Div(g.TargetAmount).
			Mul(decimal.NewFromInt(100)).
			Round(0)
		recs = append(recs, fmt.Sprintf(
			"Reduce the target by %s%% to match what you have saved.",
			decimal.NewFromInt(100).Sub(percent).String(),
		))
	}
	return recs
}

func activeRecommendations(status GoalStatus, requiredMonthly, monthlyIncome decimal.Decimal) []string {
	switch status {
	case StatusAtRisk:
		gap := requiredMonthly.Sub(monthlyIncome)
		return []string{
			fmt.Sprintf("Required savings exceed your income by %s per month; extend the deadline or lower the target.", gap.StringFixed(2)),
		}
	case StatusAmbitious:
		percent := requiredMonthly.Div(monthlyIncome).Mul(decimal.NewFromInt(100)).Round(0)
		return []string{
			fmt.Sprintf("This goal needs %s%% of your monthly income; trim discretionary spending to keep pace.", percent.String()),
		}
	default:
		return []string{"Keep up your current savings rate."}
	}
}
