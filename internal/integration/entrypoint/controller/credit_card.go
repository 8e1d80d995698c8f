package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/card"
	"github.com/pocketledger/backend/internal/application/usecase/savings"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	createUseCase  *card.CreateCardUseCase
	updateUseCase  *card.UpdateCardUseCase
	archiveUseCase *card.ArchiveCardUseCase
	listUseCase    *card.ListCardsUseCase
	payCardUseCase *savings.PayCardUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	createUseCase *card.CreateCardUseCase,
	updateUseCase *card.UpdateCardUseCase,
	archiveUseCase *card.ArchiveCardUseCase,
	listUseCase *card.ListCardsUseCase,
	payCardUseCase *savings.PayCardUseCase,
) *CreditCardController {
	return &CreditCardController{
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		archiveUseCase: archiveUseCase,
		listUseCase:    listUseCase,
		payCardUseCase: payCardUseCase,
	}
}

// List handles GET /cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), card.ListCardsInput{
		IncludeArchived: ctx.Query("include_archived") == "true",
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	cards := make([]dto.CardResponseDTO, len(output.Cards))
	for i, cc := range output.Cards {
		cards[i] = dto.ToCardResponse(cc)
	}
	ctx.JSON(http.StatusOK, dto.CardListResponseDTO{Cards: cards})
}

// Create handles POST /cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	var req dto.CardRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), card.CreateCardInput{
		Name:  req.Name,
		Limit: decimal.NewFromFloat(req.Limit),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToCardResponse(output.Card))
}

// Update handles PUT /cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card ID"})
		return
	}
	var req dto.CardRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), card.UpdateCardInput{
		ID:    id,
		Name:  req.Name,
		Limit: decimal.NewFromFloat(req.Limit),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Archive handles PATCH /cards/:id/archive requests.
func (c *CreditCardController) Archive(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card ID"})
		return
	}
	var req dto.CardArchiveRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.archiveUseCase.Execute(ctx.Request.Context(), card.ArchiveCardInput{
		ID:       id,
		Archived: req.Archived,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Pay handles POST /cards/:id/pay requests.
func (c *CreditCardController) Pay(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card ID"})
		return
	}
	var req dto.PayCardRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := savings.PayCardInput{
		CardID: id,
		Amount: decimal.NewFromFloat(req.Amount),
	}
	if req.Date != "" {
		date, err := time.Parse(entity.DateLayout, req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.Date = date
	}

	output, err := c.payCardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.PayCardResponseDTO{
		Transaction: dto.ToTransactionResponse(output.Transaction),
		Card:        dto.ToCardResponse(output.Card),
	})
}
