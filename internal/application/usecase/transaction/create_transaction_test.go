package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter/adaptertest"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type fixture struct {
	transactionRepo *adaptertest.TransactionRepository
	cardRepo        *adaptertest.CardRepository
	settingsRepo    *adaptertest.SettingsRepository
	card            *entity.CreditCard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		transactionRepo: adaptertest.NewTransactionRepository(),
		cardRepo:        adaptertest.NewCardRepository(),
		settingsRepo:    adaptertest.NewSettingsRepository(),
	}
	f.card = entity.NewCreditCard("Visa", decimal.NewFromInt(10000))
	if err := f.cardRepo.Create(context.Background(), f.card); err != nil {
		t.Fatal(err)
	}
	return f
}

func (f *fixture) savings(t *testing.T) string {
	t.Helper()
	settings, err := f.settingsRepo.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return settings.TotalSavings.String()
}

func (f *fixture) cardBalance(t *testing.T) string {
	t.Helper()
	card, err := f.cardRepo.FindByID(context.Background(), f.card.ID)
	if err != nil {
		t.Fatal(err)
	}
	return card.Balance.String()
}

func validExpense(f *fixture) TransactionInput {
	return TransactionInput{
		Type:          entity.TransactionTypeExpense,
		Amount:        decimal.RequireFromString("120.50"),
		Category:      "Shopping",
		Description:   "new shoes",
		PaymentMethod: entity.PaymentMethodCreditCard,
		CardID:        &f.card.ID,
		Date:          time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
	}
}

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("card expense raises the card balance", func(t *testing.T) {
		f := newFixture(t)
		useCase := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		output, err := useCase.Execute(ctx, CreateTransactionInput{TransactionInput: validExpense(f)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := f.cardBalance(t); got != "120.5" {
			t.Errorf("expected card balance 120.5, got %s", got)
		}
		if got := f.savings(t); got != "0" {
			t.Errorf("expected savings untouched by an expense, got %s", got)
		}
		if !output.Transaction.Date.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected date truncated to midnight, got %v", output.Transaction.Date)
		}
	})

	t.Run("income raises the savings pool only", func(t *testing.T) {
		f := newFixture(t)
		useCase := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		_, err := useCase.Execute(ctx, CreateTransactionInput{TransactionInput: TransactionInput{
			Type:          entity.TransactionTypeIncome,
			Amount:        decimal.NewFromInt(8000),
			Category:      "Salary",
			PaymentMethod: entity.PaymentMethodBank,
			Date:          time.Now(),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := f.savings(t); got != "8000" {
			t.Errorf("expected savings 8000, got %s", got)
		}
		if got := f.cardBalance(t); got != "0" {
			t.Errorf("expected card untouched, got %s", got)
		}
	})

	t.Run("validation failures leave no trace", func(t *testing.T) {
		f := newFixture(t)
		useCase := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		cases := []struct {
			name   string
			mutate func(*TransactionInput)
			code   domainError.TransactionErrorCode
		}{
			{"bad type", func(i *TransactionInput) { i.Type = "transfer" }, domainError.ErrCodeInvalidTransactionType},
			{"zero amount", func(i *TransactionInput) { i.Amount = decimal.Zero }, domainError.ErrCodeInvalidTransactionAmount},
			{"negative amount", func(i *TransactionInput) { i.Amount = decimal.NewFromInt(-5) }, domainError.ErrCodeInvalidTransactionAmount},
			{"zero date", func(i *TransactionInput) { i.Date = time.Time{} }, domainError.ErrCodeInvalidTransactionDate},
			{"bad method", func(i *TransactionInput) { i.PaymentMethod = "Cheque" }, domainError.ErrCodeInvalidPaymentMethod},
			{"card method without card", func(i *TransactionInput) { i.CardID = nil }, domainError.ErrCodeCardRequired},
			{"payment without card", func(i *TransactionInput) {
				i.Type = entity.TransactionTypeCreditCardPayment
				i.PaymentMethod = entity.PaymentMethodBank
				i.CardID = nil
			}, domainError.ErrCodeCardRequired},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				input := validExpense(f)
				tc.mutate(&input)

				_, err := useCase.Execute(ctx, CreateTransactionInput{TransactionInput: input})

				var txnErr *domainError.TransactionError
				if !errors.As(err, &txnErr) || txnErr.Code != tc.code {
					t.Errorf("expected code %s, got %v", tc.code, err)
				}
			})
		}

		stored, err := f.transactionRepo.FindAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(stored) != 0 {
			t.Errorf("expected no transactions stored, got %d", len(stored))
		}
	})

	t.Run("expense on an archived card is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.card.Archived = true
		if err := f.cardRepo.Update(ctx, f.card); err != nil {
			t.Fatal(err)
		}
		useCase := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		_, err := useCase.Execute(ctx, CreateTransactionInput{TransactionInput: validExpense(f)})

		var txnErr *domainError.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainError.ErrCodeTxnCardArchived {
			t.Errorf("expected archived card error, got %v", err)
		}
	})

	t.Run("payment on an archived card is allowed", func(t *testing.T) {
		f := newFixture(t)
		f.card.Archived = true
		f.card.Balance = decimal.NewFromInt(400)
		if err := f.cardRepo.Update(ctx, f.card); err != nil {
			t.Fatal(err)
		}
		useCase := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		_, err := useCase.Execute(ctx, CreateTransactionInput{TransactionInput: TransactionInput{
			Type:          entity.TransactionTypeCreditCardPayment,
			Amount:        decimal.NewFromInt(400),
			Category:      entity.CreditCardPaymentCategoryName,
			PaymentMethod: entity.PaymentMethodBank,
			CardID:        &f.card.ID,
			Date:          time.Now(),
		}})
		if err != nil {
			t.Fatalf("expected payment on archived card to succeed, got %v", err)
		}
		if got := f.cardBalance(t); got != "0" {
			t.Errorf("expected archived card wound down to 0, got %s", got)
		}
	})
}
