package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type DeleteGoalInput struct {
	ID uuid.UUID
}

type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{goalRepo: goalRepo}
}

func (u *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	existing, err := u.goalRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainError.NewGoalError(
			domainError.ErrCodeGoalNotFound,
			"goal not found",
			domainError.ErrGoalNotFound,
		)
	}
	return u.goalRepo.Delete(ctx, input.ID)
}
