package goal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type CreateGoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

type CreateGoalOutput struct {
	Goal *entity.Goal
}

type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

func (u *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateGoalInput(input.Name, input.TargetAmount, input.Deadline); err != nil {
		return nil, err
	}

	created := entity.NewGoal(input.Name, input.TargetAmount, input.Deadline)
	if err := u.goalRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	return &CreateGoalOutput{Goal: created}, nil
}

func validateGoalInput(name string, targetAmount decimal.Decimal, deadline time.Time) error {
	if name == "" {
		return domainError.NewGoalError(
			domainError.ErrCodeMissingGoalFields,
			"goal name is required",
			nil,
		)
	}
	if !targetAmount.IsPositive() {
		return domainError.NewGoalError(
			domainError.ErrCodeInvalidGoalTarget,
			"goal target amount must be positive",
			domainError.ErrInvalidGoalTarget,
		)
	}
	if deadline.IsZero() {
		return domainError.NewGoalError(
			domainError.ErrCodeInvalidGoalDeadline,
			"goal deadline is required",
			domainError.ErrInvalidGoalDeadline,
		)
	}
	return nil
}
