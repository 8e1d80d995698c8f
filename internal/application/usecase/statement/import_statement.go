package statement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/usecase/transaction"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type ImportStatementInput struct {
	Candidates []*entity.CandidateTransaction

	// CardID links every imported entry to the card the statement belongs
	// to. When absent, expenses are recorded without a card and negative
	// candidates fail individually, since a payment must reference a card.
	CardID *uuid.UUID
}

type ImportStatementOutput struct {
	Imported []*entity.Transaction
}

// ImportStatementUseCase commits user-confirmed candidates as transactions.
// The batch is not atomic: each candidate is committed independently with its
// usual balance and savings side effects, and a failure partway through
// leaves prior commits in place, reported via PartialImportError.
type ImportStatementUseCase struct {
	createTransaction *transaction.CreateTransactionUseCase
}

func NewImportStatementUseCase(createTransaction *transaction.CreateTransactionUseCase) *ImportStatementUseCase {
	return &ImportStatementUseCase{createTransaction: createTransaction}
}

func (u *ImportStatementUseCase) Execute(ctx context.Context, input ImportStatementInput) (*ImportStatementOutput, error) {
	if len(input.Candidates) == 0 {
		return nil, domainError.NewStatementError(
			domainError.ErrCodeNoSelection,
			"no candidates selected for import",
			nil,
		)
	}

	imported := make([]*entity.Transaction, 0, len(input.Candidates))
	failed := make([]domainError.FailedImportItem, 0)
	for i, c := range input.Candidates {
		created, err := u.importOne(ctx, c, input.CardID)
		if err != nil {
			slog.Warn("statement candidate failed to import",
				"index", i,
				"description", c.Description,
				"error", err,
			)
			failed = append(failed, domainError.FailedImportItem{
				Index:       i,
				Description: c.Description,
				Err:         err,
			})
			continue
		}
		imported = append(imported, created)
	}

	if len(failed) > 0 {
		return &ImportStatementOutput{Imported: imported}, &domainError.PartialImportError{
			Imported: len(imported),
			Failed:   failed,
		}
	}
	return &ImportStatementOutput{Imported: imported}, nil
}

// importOne maps a candidate to a transaction write. Negative amounts are
// card credits and become payments; everything else is an expense. Payments
// keep the Bank method even when the batch carries a card: the method
// records where the money came from, and payments are funded from a bank
// account, not charged to the card — the same convention pay-card uses.
func (u *ImportStatementUseCase) importOne(ctx context.Context, c *entity.CandidateTransaction, cardID *uuid.UUID) (*entity.Transaction, error) {
	date, err := time.Parse(entity.DateLayout, c.Date)
	if err != nil {
		return nil, domainError.NewTransactionError(
			domainError.ErrCodeInvalidTransactionDate,
			"candidate date is not a calendar date",
			err,
		)
	}

	input := transaction.TransactionInput{
		Type:          entity.TransactionTypeExpense,
		Amount:        c.Amount,
		Category:      c.Category,
		Description:   c.Description,
		PaymentMethod: entity.PaymentMethodBank,
		CardID:        cardID,
		Date:          date,
	}
	if cardID != nil {
		input.PaymentMethod = entity.PaymentMethodCreditCard
	}
	if c.Amount.IsNegative() {
		input.Type = entity.TransactionTypeCreditCardPayment
		input.Amount = c.Amount.Abs()
		input.Category = entity.CreditCardPaymentCategoryName
		input.PaymentMethod = entity.PaymentMethodBank
	}

	out, err := u.createTransaction.Execute(ctx, transaction.CreateTransactionInput{TransactionInput: input})
	if err != nil {
		return nil, err
	}
	return out.Transaction, nil
}
