package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/goal"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	createUseCase    *goal.CreateGoalUseCase
	updateUseCase    *goal.UpdateGoalUseCase
	deleteUseCase    *goal.DeleteGoalUseCase
	listUseCase      *goal.ListGoalsUseCase
	aggregateUseCase *goal.AggregateGoalsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	aggregateUseCase *goal.AggregateGoalsUseCase,
) *GoalController {
	return &GoalController{
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		listUseCase:      listUseCase,
		aggregateUseCase: aggregateUseCase,
	}
}

// List handles GET /goals requests. Every goal carries its projection.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	goals := make([]dto.GoalResponseDTO, len(output.Goals))
	for i, pg := range output.Goals {
		goals[i] = dto.ToGoalResponse(pg.Goal, pg.Projection)
	}
	ctx.JSON(http.StatusOK, dto.GoalListResponseDTO{Goals: goals})
}

// Aggregate handles GET /goals/aggregate requests.
func (c *GoalController) Aggregate(ctx *gin.Context) {
	output, err := c.aggregateUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GoalAggregateResponseDTO{
		CombinedRequiredMonthly: output.CombinedRequiredMonthly.StringFixed(2),
		MonthNetFlow:            output.MonthNetFlow.StringFixed(2),
		OnTrackRatio:            output.OnTrackRatio.StringFixed(4),
		OnTrackPercent:          output.OnTrackPercent.StringFixed(1),
	})
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	name, target, deadline, ok := bindGoalRequest(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		Name:         name,
		TargetAmount: target,
		Deadline:     deadline,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"id":            output.Goal.ID.String(),
		"name":          output.Goal.Name,
		"target_amount": output.Goal.TargetAmount.String(),
		"deadline":      output.Goal.Deadline.Format(entity.DateLayout),
	})
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid goal ID"})
		return
	}
	name, target, deadline, ok := bindGoalRequest(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		ID:           id,
		Name:         name,
		TargetAmount: target,
		Deadline:     deadline,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"id":            output.Goal.ID.String(),
		"name":          output.Goal.Name,
		"target_amount": output.Goal.TargetAmount.String(),
		"deadline":      output.Goal.Deadline.Format(entity.DateLayout),
	})
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid goal ID"})
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{ID: id}); err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func bindGoalRequest(ctx *gin.Context) (string, decimal.Decimal, time.Time, bool) {
	var req dto.GoalRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return "", decimal.Zero, time.Time{}, false
	}
	deadline, err := time.Parse(entity.DateLayout, req.Deadline)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid deadline format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidGoalDeadline),
		})
		return "", decimal.Zero, time.Time{}, false
	}
	return req.Name, decimal.NewFromFloat(req.TargetAmount), deadline, true
}
