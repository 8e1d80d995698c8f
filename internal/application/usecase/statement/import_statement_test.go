package statement

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter/adaptertest"
	"github.com/pocketledger/backend/internal/application/usecase/transaction"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

func newImportFixture(t *testing.T) (*ImportStatementUseCase, *adaptertest.TransactionRepository, *adaptertest.CardRepository, *entity.CreditCard) {
	t.Helper()
	ctx := context.Background()

	transactionRepo := adaptertest.NewTransactionRepository()
	cardRepo := adaptertest.NewCardRepository()
	settingsRepo := adaptertest.NewSettingsRepository()

	card := entity.NewCreditCard("Visa", decimal.NewFromInt(10000))
	card.Balance = decimal.NewFromInt(500)
	if err := cardRepo.Create(ctx, card); err != nil {
		t.Fatal(err)
	}

	create := transaction.NewCreateTransactionUseCase(transactionRepo, cardRepo, settingsRepo)
	return NewImportStatementUseCase(create), transactionRepo, cardRepo, card
}

func TestImportStatementUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty selection", func(t *testing.T) {
		useCase, _, _, _ := newImportFixture(t)

		_, err := useCase.Execute(ctx, ImportStatementInput{})

		var stmtErr *domainError.StatementError
		if !errors.As(err, &stmtErr) || stmtErr.Code != domainError.ErrCodeNoSelection {
			t.Errorf("expected no-selection error, got %v", err)
		}
	})

	t.Run("commits expenses against the statement card", func(t *testing.T) {
		useCase, _, cardRepo, card := newImportFixture(t)

		output, err := useCase.Execute(ctx, ImportStatementInput{
			Candidates: []*entity.CandidateTransaction{
				{Date: "2026-03-02", Description: "UBER TRIP", Amount: decimal.RequireFromString("45.00"), Category: "Transport"},
			},
			CardID: &card.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Imported) != 1 {
			t.Fatalf("expected one import, got %d", len(output.Imported))
		}

		imported := output.Imported[0]
		if imported.Type != entity.TransactionTypeExpense {
			t.Errorf("expected expense, got %s", imported.Type)
		}
		if imported.PaymentMethod != entity.PaymentMethodCreditCard {
			t.Errorf("expected CreditCard method when a card is linked, got %s", imported.PaymentMethod)
		}

		stored, err := cardRepo.FindByID(ctx, card.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got := stored.Balance.String(); got != "545" {
			t.Errorf("expected balance 545 after imported expense, got %s", got)
		}
	})

	t.Run("negative amounts become card payments", func(t *testing.T) {
		useCase, _, cardRepo, card := newImportFixture(t)

		output, err := useCase.Execute(ctx, ImportStatementInput{
			Candidates: []*entity.CandidateTransaction{
				{Date: "2026-03-05", Description: "PAYMENT THANK YOU", Amount: decimal.RequireFromString("-80.00")},
			},
			CardID: &card.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		imported := output.Imported[0]
		if imported.Type != entity.TransactionTypeCreditCardPayment {
			t.Errorf("expected credit_card_payment, got %s", imported.Type)
		}
		if got := imported.Amount.String(); got != "80" {
			t.Errorf("expected absolute amount 80, got %s", got)
		}
		if imported.Category != entity.CreditCardPaymentCategoryName {
			t.Errorf("expected payment category, got %s", imported.Category)
		}
		if imported.PaymentMethod != entity.PaymentMethodBank {
			t.Errorf("expected Bank method for a payment, got %s", imported.PaymentMethod)
		}

		stored, err := cardRepo.FindByID(ctx, card.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got := stored.Balance.String(); got != "420" {
			t.Errorf("expected balance 420 after payment, got %s", got)
		}
	})

	t.Run("without a card entries use the bank method", func(t *testing.T) {
		useCase, _, _, _ := newImportFixture(t)

		output, err := useCase.Execute(ctx, ImportStatementInput{
			Candidates: []*entity.CandidateTransaction{
				{Date: "2026-03-02", Description: "STARBUCKS", Amount: decimal.RequireFromString("38.00"), Category: "Food"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := output.Imported[0].PaymentMethod; got != entity.PaymentMethodBank {
			t.Errorf("expected Bank method, got %s", got)
		}
	})

	t.Run("cardless imports reject payment candidates individually", func(t *testing.T) {
		useCase, transactionRepo, _, _ := newImportFixture(t)

		output, err := useCase.Execute(ctx, ImportStatementInput{
			Candidates: []*entity.CandidateTransaction{
				{Date: "2026-03-02", Description: "STARBUCKS", Amount: decimal.RequireFromString("38.00"), Category: "Food"},
				{Date: "2026-03-08", Description: "PAYMENT - THANK YOU", Amount: decimal.RequireFromString("-80.00")},
			},
		})

		var partial *domainError.PartialImportError
		if !errors.As(err, &partial) {
			t.Fatalf("expected partial import error, got %v", err)
		}
		if partial.Imported != 1 || len(partial.Failed) != 1 {
			t.Fatalf("expected 1 imported and 1 failed, got %d/%d", partial.Imported, len(partial.Failed))
		}
		if len(output.Imported) != 1 {
			t.Fatalf("expected the expense committed, got %d imports", len(output.Imported))
		}
		if partial.Failed[0].Index != 1 {
			t.Errorf("expected the payment candidate to fail, got index %d", partial.Failed[0].Index)
		}
		var txnErr *domainError.TransactionError
		if !errors.As(partial.Failed[0].Err, &txnErr) || txnErr.Code != domainError.ErrCodeCardRequired {
			t.Errorf("expected card-required failure, got %v", partial.Failed[0].Err)
		}

		stored, err := transactionRepo.FindAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(stored) != 1 || stored[0].Type != entity.TransactionTypeExpense {
			t.Errorf("expected only the expense stored, got %v", stored)
		}
	})

	t.Run("bad candidates fail individually and keep the rest", func(t *testing.T) {
		useCase, transactionRepo, _, card := newImportFixture(t)

		output, err := useCase.Execute(ctx, ImportStatementInput{
			Candidates: []*entity.CandidateTransaction{
				{Date: "2026-03-02", Description: "GOOD ONE", Amount: decimal.RequireFromString("45.00"), Category: "Transport"},
				{Date: "not-a-date", Description: "BAD DATE", Amount: decimal.RequireFromString("10.00"), Category: "Transport"},
				{Date: "2026-03-03", Description: "ALSO GOOD", Amount: decimal.RequireFromString("12.00"), Category: "Food"},
			},
			CardID: &card.ID,
		})

		var partial *domainError.PartialImportError
		if !errors.As(err, &partial) {
			t.Fatalf("expected partial import error, got %v", err)
		}
		if partial.Imported != 2 || len(partial.Failed) != 1 {
			t.Errorf("expected 2 imported and 1 failed, got %d and %d", partial.Imported, len(partial.Failed))
		}
		if partial.Failed[0].Index != 1 {
			t.Errorf("expected failure at index 1, got %d", partial.Failed[0].Index)
		}
		if len(output.Imported) != 2 {
			t.Errorf("expected the two good candidates committed, got %d", len(output.Imported))
		}

		stored, err := transactionRepo.FindAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(stored) != 2 {
			t.Errorf("expected 2 stored transactions, got %d", len(stored))
		}
	})

	t.Run("unknown card id fails every candidate", func(t *testing.T) {
		useCase, _, _, _ := newImportFixture(t)
		missing := uuid.New()

		_, err := useCase.Execute(ctx, ImportStatementInput{
			Candidates: []*entity.CandidateTransaction{
				{Date: "2026-03-02", Description: "ANY", Amount: decimal.RequireFromString("5.00"), Category: "Food"},
			},
			CardID: &missing,
		})

		var partial *domainError.PartialImportError
		if !errors.As(err, &partial) {
			t.Fatalf("expected partial import error, got %v", err)
		}
		if len(partial.Failed) != 1 {
			t.Errorf("expected one failed candidate, got %d", len(partial.Failed))
		}
	})
}
