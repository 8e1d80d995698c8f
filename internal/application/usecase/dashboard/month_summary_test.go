package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter/adaptertest"
	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestMonthSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	transactionRepo := adaptertest.NewTransactionRepository()
	cardRepo := adaptertest.NewCardRepository()

	active := entity.NewCreditCard("Visa", decimal.NewFromInt(10000))
	active.Balance = decimal.NewFromInt(2500)
	archived := entity.NewCreditCard("Old", decimal.NewFromInt(5000))
	archived.Archived = true
	for _, c := range []*entity.CreditCard{active, archived} {
		if err := cardRepo.Create(ctx, c); err != nil {
			t.Fatal(err)
		}
	}

	march := func(day int) time.Time { return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC) }
	entries := []*entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeIncome, decimal.NewFromInt(8000), "Salary", "", entity.PaymentMethodBank, nil, march(1)),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(150), "Food & Dining", "", entity.PaymentMethodCash, nil, march(5)),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(90), "Food & Dining", "", entity.PaymentMethodCash, nil, march(5)),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(60), "Transport", "", entity.PaymentMethodCreditCard, &active.ID, march(7)),
		entity.NewTransaction(entity.TransactionTypeCreditCardPayment, decimal.NewFromInt(500), entity.CreditCardPaymentCategoryName, "", entity.PaymentMethodBank, &active.ID, march(8)),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(999), "Rent", "", entity.PaymentMethodBank, nil, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)),
	}
	for _, e := range entries {
		if err := transactionRepo.Create(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	useCase := NewMonthSummaryUseCase(transactionRepo, cardRepo)
	output, err := useCase.Execute(ctx, MonthSummaryInput{Month: "2026-03"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Month != "2026-03" {
		t.Errorf("expected month echoed back, got %s", output.Month)
	}
	if got := output.Income.String(); got != "8000" {
		t.Errorf("expected income 8000, got %s", got)
	}
	// Card payments do not count as spending.
	if got := output.Expense.String(); got != "300" {
		t.Errorf("expected expense 300, got %s", got)
	}
	if got := output.NetFlow.String(); got != "7700" {
		t.Errorf("expected net flow 7700, got %s", got)
	}

	if len(output.ByCategory) != 2 {
		t.Fatalf("expected 2 expense categories, got %d", len(output.ByCategory))
	}
	if output.ByCategory[0].Category != "Food & Dining" || output.ByCategory[0].Total.String() != "240" {
		t.Errorf("expected Food & Dining 240 first, got %s %s",
			output.ByCategory[0].Category, output.ByCategory[0].Total)
	}
	if output.ByCategory[1].Category != "Transport" || output.ByCategory[1].Total.String() != "60" {
		t.Errorf("expected Transport 60 second, got %s %s",
			output.ByCategory[1].Category, output.ByCategory[1].Total)
	}

	if len(output.ByDay) != 4 {
		t.Fatalf("expected 4 distinct days, got %d", len(output.ByDay))
	}
	if output.ByDay[0].Date != "2026-03-01" || output.ByDay[0].Income.String() != "8000" {
		t.Errorf("expected March 1 income first, got %+v", output.ByDay[0])
	}
	if output.ByDay[1].Date != "2026-03-05" || output.ByDay[1].Expense.String() != "240" {
		t.Errorf("expected March 5 expenses merged, got %+v", output.ByDay[1])
	}

	if len(output.Cards) != 1 {
		t.Fatalf("expected only the active card, got %d", len(output.Cards))
	}
	if got := output.Cards[0].Utilization.String(); got != "25" {
		t.Errorf("expected utilization 25, got %s", got)
	}
}
