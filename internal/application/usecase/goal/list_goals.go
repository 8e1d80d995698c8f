package goal

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// ProjectedGoal pairs a stored goal with its derived projection.
type ProjectedGoal struct {
	Goal       *entity.Goal
	Projection Projection
}

type ListGoalsOutput struct {
	Goals []ProjectedGoal
}

// ListGoalsUseCase returns every goal with its projection derived from the
// current savings pool.
type ListGoalsUseCase struct {
	goalRepo     adapter.GoalRepository
	settingsRepo adapter.SettingsRepository
}

func NewListGoalsUseCase(goalRepo adapter.GoalRepository, settingsRepo adapter.SettingsRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{goalRepo: goalRepo, settingsRepo: settingsRepo}
}

func (u *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	goals, err := u.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	projected := make([]ProjectedGoal, len(goals))
	for i, g := range goals {
		projected[i] = ProjectedGoal{Goal: g, Projection: Project(g, settings, today)}
	}
	return &ListGoalsOutput{Goals: projected}, nil
}
