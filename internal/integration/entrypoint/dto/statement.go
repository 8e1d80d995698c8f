package dto

import (
	"github.com/pocketledger/backend/internal/domain/entity"
)

// ReviewableTransactionDTO represents an extraction candidate prepared for
// user review.
type ReviewableTransactionDTO struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Category    string `json:"category"`
	IsDuplicate bool   `json:"is_duplicate"`
	Selected    bool   `json:"selected"`
}

// ExtractStatementResponseDTO represents the extraction result.
type ExtractStatementResponseDTO struct {
	Transactions []ReviewableTransactionDTO `json:"transactions"`
	Total        int                        `json:"total"`
	Duplicates   int                        `json:"duplicates"`
}

// ImportCandidateDTO represents one user-confirmed candidate to commit.
type ImportCandidateDTO struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
}

// ImportStatementRequestDTO represents the import commit request.
type ImportStatementRequestDTO struct {
	Candidates []ImportCandidateDTO `json:"candidates" binding:"required,min=1"`
	CardID     *string              `json:"card_id,omitempty"`
}

// FailedImportDTO identifies a candidate that failed to commit.
type FailedImportDTO struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Error       string `json:"error"`
}

// ImportStatementResponseDTO represents the import result.
type ImportStatementResponseDTO struct {
	Imported []TransactionResponseDTO `json:"imported"`
	Failed   []FailedImportDTO        `json:"failed,omitempty"`
}

// ToReviewableTransactionDTO converts a reviewable transaction to its DTO form.
func ToReviewableTransactionDTO(r *entity.ReviewableTransaction) ReviewableTransactionDTO {
	return ReviewableTransactionDTO{
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount.String(),
		Currency:    r.Currency,
		Category:    r.Category,
		IsDuplicate: r.IsDuplicate,
		Selected:    r.Selected,
	}
}
