package dto

import (
	"github.com/pocketledger/backend/internal/application/usecase/goal"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// GoalRequestDTO represents the request body for creating or updating a goal.
type GoalRequestDTO struct {
	Name         string  `json:"name" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"required"`
	Deadline     string  `json:"deadline" binding:"required"` // Format: "YYYY-MM-DD"
}

// ProjectionDTO represents a goal's derived projection.
type ProjectionDTO struct {
	Remaining       string   `json:"remaining"`
	DaysLeft        int      `json:"days_left"`
	MonthsLeft      string   `json:"months_left"`
	RequiredMonthly string   `json:"required_monthly"`
	RequiredDaily   string   `json:"required_daily"`
	Status          string   `json:"status"`
	Explanation     string   `json:"explanation"`
	Recommendations []string `json:"recommendations"`
}

// GoalResponseDTO represents a goal with its projection in API responses.
type GoalResponseDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	TargetAmount string        `json:"target_amount"`
	Deadline     string        `json:"deadline"`
	Projection   ProjectionDTO `json:"projection"`
}

// GoalListResponseDTO represents a goal listing.
type GoalListResponseDTO struct {
	Goals []GoalResponseDTO `json:"goals"`
}

// GoalAggregateResponseDTO represents the dashboard-level goal aggregate.
type GoalAggregateResponseDTO struct {
	CombinedRequiredMonthly string `json:"combined_required_monthly"`
	MonthNetFlow            string `json:"month_net_flow"`
	OnTrackRatio            string `json:"on_track_ratio"`
	OnTrackPercent          string `json:"on_track_percent"`
}

// ToProjectionDTO converts a projection to its DTO form.
func ToProjectionDTO(p goal.Projection) ProjectionDTO {
	return ProjectionDTO{
		Remaining:       p.Remaining.StringFixed(2),
		DaysLeft:        p.DaysLeft,
		MonthsLeft:      p.MonthsLeft.StringFixed(2),
		RequiredMonthly: p.RequiredMonthly.StringFixed(2),
		RequiredDaily:   p.RequiredDaily.StringFixed(2),
		Status:          string(p.Status),
		Explanation:     p.Explanation,
		Recommendations: p.Recommendations,
	}
}

// ToGoalResponse converts a goal entity and its projection to a response DTO.
func ToGoalResponse(g *entity.Goal, p goal.Projection) GoalResponseDTO {
	return GoalResponseDTO{
		ID:           g.ID.String(),
		Name:         g.Name,
		TargetAmount: g.TargetAmount.String(),
		Deadline:     g.Deadline.Format(entity.DateLayout),
		Projection:   ToProjectionDTO(p),
	}
}
