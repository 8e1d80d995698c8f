package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/transaction"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		Month:    ctx.Query("month"),
		Type:     entity.TransactionType(ctx.Query("type")),
		Category: ctx.Query("category"),
	}
	if cardID := ctx.Query("card_id"); cardID != "" {
		id, err := uuid.Parse(cardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card_id"})
			return
		}
		input.CardID = &id
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	transactions := make([]dto.TransactionResponseDTO, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = dto.ToTransactionResponse(t)
	}
	ctx.JSON(http.StatusOK, dto.TransactionListResponseDTO{
		Transactions: transactions,
		Total:        len(transactions),
	})
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	input, ok := bindTransactionInput(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		TransactionInput: input,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}
	input, ok := bindTransactionInput(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:               id,
		TransactionInput: input,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: id}); err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// bindTransactionInput parses and converts the shared transaction request
// body. It writes the error response itself and reports success via ok.
func bindTransactionInput(ctx *gin.Context) (transaction.TransactionInput, bool) {
	var req dto.TransactionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return transaction.TransactionInput{}, false
	}

	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return transaction.TransactionInput{}, false
	}

	input := transaction.TransactionInput{
		Type:          entity.TransactionType(req.Type),
		Amount:        decimal.NewFromFloat(req.Amount),
		Category:      req.Category,
		Description:   req.Description,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Date:          date,
	}
	if req.CardID != nil && *req.CardID != "" {
		cardID, err := uuid.Parse(*req.CardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card_id"})
			return transaction.TransactionInput{}, false
		}
		input.CardID = &cardID
	}
	return input, true
}
