package goal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type UpdateGoalInput struct {
	ID           uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

type UpdateGoalOutput struct {
	Goal *entity.Goal
}

type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo}
}

func (u *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if err := validateGoalInput(input.Name, input.TargetAmount, input.Deadline); err != nil {
		return nil, err
	}

	existing, err := u.goalRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domainError.NewGoalError(
			domainError.ErrCodeGoalNotFound,
			"goal not found",
			domainError.ErrGoalNotFound,
		)
	}

	existing.Name = input.Name
	existing.TargetAmount = input.TargetAmount
	existing.Deadline = entity.TruncateDate(input.Deadline)
	existing.UpdatedAt = time.Now().UTC()
	if err := u.goalRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return &UpdateGoalOutput{Goal: existing}, nil
}
