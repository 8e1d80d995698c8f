package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter/adaptertest"
	"github.com/pocketledger/backend/internal/domain/entity"
)

func seedListFixture(t *testing.T) (*ListTransactionsUseCase, *entity.CreditCard) {
	t.Helper()
	ctx := context.Background()
	repo := adaptertest.NewTransactionRepository()
	card := entity.NewCreditCard("Visa", decimal.NewFromInt(10000))

	entries := []*entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeIncome, decimal.NewFromInt(8000), "Salary", "march pay",
			entity.PaymentMethodBank, nil, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(120), "Food & Dining", "dinner",
			entity.PaymentMethodCreditCard, &card.ID, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(60), "Transport", "taxi",
			entity.PaymentMethodCash, nil, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)),
	}
	for _, e := range entries {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatal(err)
		}
	}
	return NewListTransactionsUseCase(repo), card
}

func TestListTransactionsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters returns everything newest first", func(t *testing.T) {
		useCase, _ := seedListFixture(t)

		output, err := useCase.Execute(ctx, ListTransactionsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(output.Transactions))
		}
		if output.Transactions[0].Description != "dinner" {
			t.Errorf("expected newest entry first, got %s", output.Transactions[0].Description)
		}
		if output.Transactions[2].Description != "taxi" {
			t.Errorf("expected oldest entry last, got %s", output.Transactions[2].Description)
		}
	})

	t.Run("month filter", func(t *testing.T) {
		useCase, _ := seedListFixture(t)

		output, err := useCase.Execute(ctx, ListTransactionsInput{Month: "2026-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 || output.Transactions[0].Description != "taxi" {
			t.Errorf("expected only the February entry, got %d entries", len(output.Transactions))
		}
	})

	t.Run("type filter", func(t *testing.T) {
		useCase, _ := seedListFixture(t)

		output, err := useCase.Execute(ctx, ListTransactionsInput{Type: entity.TransactionTypeIncome})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 || output.Transactions[0].Category != "Salary" {
			t.Errorf("expected only the income entry, got %d entries", len(output.Transactions))
		}
	})

	t.Run("card filter", func(t *testing.T) {
		useCase, card := seedListFixture(t)

		output, err := useCase.Execute(ctx, ListTransactionsInput{CardID: &card.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 || output.Transactions[0].Description != "dinner" {
			t.Errorf("expected only the card-linked entry, got %d entries", len(output.Transactions))
		}
	})

	t.Run("filters combine", func(t *testing.T) {
		useCase, _ := seedListFixture(t)

		output, err := useCase.Execute(ctx, ListTransactionsInput{
			Month: "2026-03",
			Type:  entity.TransactionTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 || output.Transactions[0].Description != "dinner" {
			t.Errorf("expected one March expense, got %d entries", len(output.Transactions))
		}
	})
}
