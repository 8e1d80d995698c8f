package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("edit reverses the old side effects and applies the new", func(t *testing.T) {
		f := newFixture(t)
		create := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)
		update := NewUpdateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		created, err := create.Execute(ctx, CreateTransactionInput{TransactionInput: validExpense(f)})
		if err != nil {
			t.Fatal(err)
		}

		input := validExpense(f)
		input.Amount = decimal.NewFromInt(200)
		output, err := update.Execute(ctx, UpdateTransactionInput{
			ID:               created.Transaction.ID,
			TransactionInput: input,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := f.cardBalance(t); got != "200" {
			t.Errorf("expected balance to land on the new amount, got %s", got)
		}
		if output.Transaction.ID != created.Transaction.ID {
			t.Error("expected the edit to keep the transaction ID")
		}
		if !output.Transaction.CreatedAt.Equal(created.Transaction.CreatedAt) {
			t.Error("expected the edit to keep CreatedAt")
		}
	})

	t.Run("changing income to expense takes the income back out of savings", func(t *testing.T) {
		f := newFixture(t)
		create := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)
		update := NewUpdateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		created, err := create.Execute(ctx, CreateTransactionInput{TransactionInput: TransactionInput{
			Type:          entity.TransactionTypeIncome,
			Amount:        decimal.NewFromInt(5000),
			Category:      "Salary",
			PaymentMethod: entity.PaymentMethodBank,
			Date:          time.Now(),
		}})
		if err != nil {
			t.Fatal(err)
		}
		if got := f.savings(t); got != "5000" {
			t.Fatalf("expected savings 5000 before edit, got %s", got)
		}

		_, err = update.Execute(ctx, UpdateTransactionInput{
			ID: created.Transaction.ID,
			TransactionInput: TransactionInput{
				Type:          entity.TransactionTypeExpense,
				Amount:        decimal.NewFromInt(5000),
				Category:      "Rent",
				PaymentMethod: entity.PaymentMethodBank,
				Date:          time.Now(),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := f.savings(t); got != "0" {
			t.Errorf("expected savings back to 0, got %s", got)
		}
	})

	t.Run("moving an expense between cards rebalances both", func(t *testing.T) {
		f := newFixture(t)
		second := entity.NewCreditCard("Amex", decimal.NewFromInt(8000))
		if err := f.cardRepo.Create(ctx, second); err != nil {
			t.Fatal(err)
		}
		create := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)
		update := NewUpdateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		created, err := create.Execute(ctx, CreateTransactionInput{TransactionInput: validExpense(f)})
		if err != nil {
			t.Fatal(err)
		}

		input := validExpense(f)
		input.CardID = &second.ID
		if _, err := update.Execute(ctx, UpdateTransactionInput{
			ID:               created.Transaction.ID,
			TransactionInput: input,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := f.cardBalance(t); got != "0" {
			t.Errorf("expected original card back to 0, got %s", got)
		}
		moved, err := f.cardRepo.FindByID(ctx, second.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got := moved.Balance.String(); got != "120.5" {
			t.Errorf("expected new card to carry 120.5, got %s", got)
		}
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		f := newFixture(t)
		update := NewUpdateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		_, err := update.Execute(ctx, UpdateTransactionInput{
			ID:               uuid.New(),
			TransactionInput: validExpense(f),
		})

		var txnErr *domainError.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainError.ErrCodeTransactionNotFound {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("delete reverses card and savings effects", func(t *testing.T) {
		f := newFixture(t)
		create := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)
		del := NewDeleteTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		expense, err := create.Execute(ctx, CreateTransactionInput{TransactionInput: validExpense(f)})
		if err != nil {
			t.Fatal(err)
		}
		income, err := create.Execute(ctx, CreateTransactionInput{TransactionInput: TransactionInput{
			Type:          entity.TransactionTypeIncome,
			Amount:        decimal.NewFromInt(3000),
			Category:      "Salary",
			PaymentMethod: entity.PaymentMethodBank,
			Date:          time.Now(),
		}})
		if err != nil {
			t.Fatal(err)
		}

		if err := del.Execute(ctx, DeleteTransactionInput{ID: expense.Transaction.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := f.cardBalance(t); got != "0" {
			t.Errorf("expected card balance back to 0, got %s", got)
		}

		if err := del.Execute(ctx, DeleteTransactionInput{ID: income.Transaction.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := f.savings(t); got != "0" {
			t.Errorf("expected savings back to 0, got %s", got)
		}

		stored, err := f.transactionRepo.FindAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(stored) != 0 {
			t.Errorf("expected empty store, got %d entries", len(stored))
		}
	})

	t.Run("delete tolerates a card that no longer exists", func(t *testing.T) {
		f := newFixture(t)
		create := NewCreateTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)
		del := NewDeleteTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		created, err := create.Execute(ctx, CreateTransactionInput{TransactionInput: validExpense(f)})
		if err != nil {
			t.Fatal(err)
		}

		// Simulate the card being removed out from under its history.
		if err := f.cardRepo.ReplaceAll(ctx, nil); err != nil {
			t.Fatal(err)
		}

		if err := del.Execute(ctx, DeleteTransactionInput{ID: created.Transaction.ID}); err != nil {
			t.Errorf("expected delete to tolerate the missing card, got %v", err)
		}
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		f := newFixture(t)
		del := NewDeleteTransactionUseCase(f.transactionRepo, f.cardRepo, f.settingsRepo)

		err := del.Execute(ctx, DeleteTransactionInput{ID: uuid.New()})

		var txnErr *domainError.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainError.ErrCodeTransactionNotFound {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}
