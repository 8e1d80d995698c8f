package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/statement"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// maxStatementSize caps the uploaded PDF at 20 MiB.
const maxStatementSize = 20 << 20

// StatementController handles statement extraction and import endpoints.
type StatementController struct {
	extractUseCase *statement.ExtractStatementUseCase
	importUseCase  *statement.ImportStatementUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(
	extractUseCase *statement.ExtractStatementUseCase,
	importUseCase *statement.ImportStatementUseCase,
) *StatementController {
	return &StatementController{
		extractUseCase: extractUseCase,
		importUseCase:  importUseCase,
	}
}

// Extract handles POST /statement/extract requests. The PDF arrives as a
// multipart form file under the "file" field.
func (c *StatementController) Extract(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing statement file, expected multipart field 'file'",
		})
		return
	}
	if fileHeader.Size > maxStatementSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: "Statement file exceeds the 20 MiB limit",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Could not read uploaded file"})
		return
	}
	defer file.Close()

	pdf, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Could not read uploaded file"})
		return
	}

	output, err := c.extractUseCase.Execute(ctx.Request.Context(), statement.ExtractStatementInput{PDF: pdf})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	transactions := make([]dto.ReviewableTransactionDTO, len(output.Transactions))
	duplicates := 0
	for i, r := range output.Transactions {
		transactions[i] = dto.ToReviewableTransactionDTO(r)
		if r.IsDuplicate {
			duplicates++
		}
	}
	ctx.JSON(http.StatusOK, dto.ExtractStatementResponseDTO{
		Transactions: transactions,
		Total:        len(transactions),
		Duplicates:   duplicates,
	})
}

// Import handles POST /statement/import requests. Commits are per candidate;
// a partial failure still returns the entries that landed, alongside the ones
// that did not.
func (c *StatementController) Import(ctx *gin.Context) {
	var req dto.ImportStatementRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := statement.ImportStatementInput{
		Candidates: make([]*entity.CandidateTransaction, len(req.Candidates)),
	}
	for i, c := range req.Candidates {
		input.Candidates[i] = &entity.CandidateTransaction{
			Date:        c.Date,
			Description: c.Description,
			Amount:      decimal.NewFromFloat(c.Amount),
			Currency:    c.Currency,
			Category:    c.Category,
		}
	}
	if req.CardID != nil && *req.CardID != "" {
		cardID, err := uuid.Parse(*req.CardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card_id"})
			return
		}
		input.CardID = &cardID
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var partial *domainError.PartialImportError
		if errors.As(err, &partial) {
			ctx.JSON(http.StatusMultiStatus, toImportResponse(output, partial))
			return
		}
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toImportResponse(output, nil))
}

func toImportResponse(output *statement.ImportStatementOutput, partial *domainError.PartialImportError) dto.ImportStatementResponseDTO {
	resp := dto.ImportStatementResponseDTO{
		Imported: make([]dto.TransactionResponseDTO, len(output.Imported)),
	}
	for i, t := range output.Imported {
		resp.Imported[i] = dto.ToTransactionResponse(t)
	}
	if partial != nil {
		resp.Failed = make([]dto.FailedImportDTO, len(partial.Failed))
		for i, f := range partial.Failed {
			resp.Failed[i] = dto.FailedImportDTO{
				Index:       f.Index,
				Description: f.Description,
				Error:       f.Err.Error(),
			}
		}
	}
	return resp
}
