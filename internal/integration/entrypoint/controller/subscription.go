package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/subscription"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	subscriptionUseCases *subscription.SubscriptionUseCases
	summaryUseCase       *subscription.SummaryUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	subscriptionUseCases *subscription.SubscriptionUseCases,
	summaryUseCase *subscription.SummaryUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		subscriptionUseCases: subscriptionUseCases,
		summaryUseCase:       summaryUseCase,
	}
}

// List handles GET /subscriptions requests.
func (c *SubscriptionController) List(ctx *gin.Context) {
	output, err := c.subscriptionUseCases.List(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	subscriptions := make([]dto.SubscriptionResponseDTO, len(output.Subscriptions))
	for i, s := range output.Subscriptions {
		subscriptions[i] = dto.ToSubscriptionResponse(s)
	}
	ctx.JSON(http.StatusOK, dto.SubscriptionListResponseDTO{Subscriptions: subscriptions})
}

// Summary handles GET /subscriptions/summary requests.
func (c *SubscriptionController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SubscriptionSummaryResponseDTO{
		ActiveCount:    output.ActiveCount,
		MonthlyTotal:   output.MonthlyTotal.StringFixed(2),
		QuarterlyTotal: output.QuarterlyTotal.StringFixed(2),
		AnnualTotal:    output.AnnualTotal.StringFixed(2),
	})
}

// Create handles POST /subscriptions requests.
func (c *SubscriptionController) Create(ctx *gin.Context) {
	input, ok := bindSubscriptionInput(ctx)
	if !ok {
		return
	}
	output, err := c.subscriptionUseCases.Create(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToSubscriptionResponse(output.Subscription))
}

// Update handles PUT /subscriptions/:id requests.
func (c *SubscriptionController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid subscription ID"})
		return
	}
	input, ok := bindSubscriptionInput(ctx)
	if !ok {
		return
	}
	output, err := c.subscriptionUseCases.Update(ctx.Request.Context(), id, input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}

// Delete handles DELETE /subscriptions/:id requests.
func (c *SubscriptionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid subscription ID"})
		return
	}
	if err := c.subscriptionUseCases.Delete(ctx.Request.Context(), id); err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func bindSubscriptionInput(ctx *gin.Context) (subscription.SubscriptionInput, bool) {
	var req dto.SubscriptionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return subscription.SubscriptionInput{}, false
	}
	startDate, err := time.Parse(entity.DateLayout, req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
		})
		return subscription.SubscriptionInput{}, false
	}

	input := subscription.SubscriptionInput{
		Name:          req.Name,
		Amount:        decimal.NewFromFloat(req.Amount),
		Frequency:     entity.SubscriptionFrequency(req.Frequency),
		Category:      req.Category,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		StartDate:     startDate,
		Active:        req.Active,
		Notes:         req.Notes,
	}
	if req.CardID != nil && *req.CardID != "" {
		cardID, err := uuid.Parse(*req.CardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card_id"})
			return subscription.SubscriptionInput{}, false
		}
		input.CardID = &cardID
	}
	return input, true
}
