package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter/adaptertest"
	"github.com/pocketledger/backend/internal/application/usecase/reconciliation"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type snapshotFixture struct {
	transactionRepo  *adaptertest.TransactionRepository
	categoryRepo     *adaptertest.CategoryRepository
	cardRepo         *adaptertest.CardRepository
	goalRepo         *adaptertest.GoalRepository
	assetRepo        *adaptertest.AssetRepository
	subscriptionRepo *adaptertest.SubscriptionRepository
	settingsRepo     *adaptertest.SettingsRepository
	export           *ExportSnapshotUseCase
	importer         *ImportSnapshotUseCase
}

func newSnapshotFixture() *snapshotFixture {
	f := &snapshotFixture{
		transactionRepo:  adaptertest.NewTransactionRepository(),
		categoryRepo:     adaptertest.NewCategoryRepository(),
		cardRepo:         adaptertest.NewCardRepository(),
		goalRepo:         adaptertest.NewGoalRepository(),
		assetRepo:        adaptertest.NewAssetRepository(),
		subscriptionRepo: adaptertest.NewSubscriptionRepository(),
		settingsRepo:     adaptertest.NewSettingsRepository(),
	}
	f.export = NewExportSnapshotUseCase(
		f.transactionRepo, f.categoryRepo, f.cardRepo, f.goalRepo,
		f.assetRepo, f.subscriptionRepo, f.settingsRepo,
	)
	f.importer = NewImportSnapshotUseCase(
		f.transactionRepo, f.categoryRepo, f.cardRepo, f.goalRepo,
		f.assetRepo, f.subscriptionRepo, f.settingsRepo,
		reconciliation.NewRunReconciliationUseCase(f.transactionRepo, f.cardRepo),
	)
	return f
}

func (f *snapshotFixture) seed(ctx context.Context, t *testing.T) {
	t.Helper()

	card := entity.NewCreditCard("Visa", decimal.NewFromInt(10000))
	if err := f.cardRepo.Create(ctx, card); err != nil {
		t.Fatal(err)
	}

	expense := entity.NewTransaction(
		entity.TransactionTypeExpense,
		decimal.NewFromFloat(120.50),
		"Food & Dining",
		"Dinner",
		entity.PaymentMethodCreditCard,
		&card.ID,
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	)
	if err := f.transactionRepo.Create(ctx, expense); err != nil {
		t.Fatal(err)
	}
	card.Balance = expense.Amount
	if err := f.cardRepo.Update(ctx, card); err != nil {
		t.Fatal(err)
	}

	if err := f.categoryRepo.Create(ctx, entity.NewCategory("Food & Dining", entity.CategoryTypeExpense, "🍜", 1)); err != nil {
		t.Fatal(err)
	}
	if err := f.goalRepo.Create(ctx, entity.NewGoal("Emergency Fund", decimal.NewFromInt(12000), time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))); err != nil {
		t.Fatal(err)
	}
	if err := f.assetRepo.Create(ctx, entity.NewAsset("Car", decimal.NewFromInt(30000))); err != nil {
		t.Fatal(err)
	}

	subscription := entity.NewSubscription(
		"Netflix", decimal.NewFromInt(120), entity.FrequencyMonthly,
		"Entertainment", entity.PaymentMethodBank, nil,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "",
	)
	if err := f.subscriptionRepo.Create(ctx, subscription); err != nil {
		t.Fatal(err)
	}

	settings, err := f.settingsRepo.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	settings.UserName = "Gabi"
	settings.TotalSavings = decimal.NewFromInt(5000)
	if err := f.settingsRepo.Update(ctx, settings); err != nil {
		t.Fatal(err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()

	source := newSnapshotFixture()
	source.seed(ctx, t)

	exported, err := source.export.Execute(ctx)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	raw, err := json.Marshal(exported.Snapshot)
	if err != nil {
		t.Fatal(err)
	}

	target := newSnapshotFixture()
	output, err := target.importer.Execute(ctx, ImportSnapshotInput{Raw: raw})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	want := map[string]int{
		"transactions": 1, "categories": 1, "cards": 1, "goals": 1,
		"assets": 1, "subscriptions": 1, "settings": 1,
	}
	for collection, count := range want {
		if output.Imported[collection] != count {
			t.Errorf("expected %d %s imported, got %d", count, collection, output.Imported[collection])
		}
	}

	transactions, err := target.transactionRepo.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(transactions) != 1 || transactions[0].Description != "Dinner" {
		t.Fatalf("expected the dinner transaction restored, got %v", transactions)
	}
	if !transactions[0].Date.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date restored, got %s", transactions[0].Date)
	}

	settings, err := target.settingsRepo.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if settings.UserName != "Gabi" || !settings.TotalSavings.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected settings restored, got %+v", settings)
	}

	if output.Reconciliation == nil || output.Reconciliation.CardsChecked != 1 {
		t.Errorf("expected one card reconciled, got %+v", output.Reconciliation)
	}
	if output.Reconciliation.CardsCorrected != 0 {
		t.Errorf("expected restored balance already consistent, got %d corrected", output.Reconciliation.CardsCorrected)
	}
}

func TestImportSnapshotUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("absent collections are left untouched", func(t *testing.T) {
		f := newSnapshotFixture()
		f.seed(ctx, t)

		raw, err := json.Marshal(Snapshot{
			Assets: []SnapshotAsset{{
				ID: uuid.New(), Name: "Apartment", Value: decimal.NewFromInt(450000),
				LastUpdated: time.Now().UTC(),
			}},
			ExportedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatal(err)
		}

		output, err := f.importer.Execute(ctx, ImportSnapshotInput{Raw: raw})
		if err != nil {
			t.Fatalf("import failed: %v", err)
		}
		if len(output.Imported) != 1 || output.Imported["assets"] != 1 {
			t.Errorf("expected only assets imported, got %v", output.Imported)
		}

		assets, err := f.assetRepo.FindAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(assets) != 1 || assets[0].Name != "Apartment" {
			t.Errorf("expected the asset collection replaced, got %v", assets)
		}

		transactions, err := f.transactionRepo.FindAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(transactions) != 1 {
			t.Errorf("expected existing transactions untouched, got %d", len(transactions))
		}
	})

	t.Run("corrects drifted card balances after restore", func(t *testing.T) {
		source := newSnapshotFixture()
		source.seed(ctx, t)
		exported, err := source.export.Execute(ctx)
		if err != nil {
			t.Fatal(err)
		}
		exported.Snapshot.Cards[0].Balance = decimal.NewFromInt(999)
		raw, err := json.Marshal(exported.Snapshot)
		if err != nil {
			t.Fatal(err)
		}

		target := newSnapshotFixture()
		output, err := target.importer.Execute(ctx, ImportSnapshotInput{Raw: raw})
		if err != nil {
			t.Fatalf("import failed: %v", err)
		}
		if output.Reconciliation.CardsCorrected != 1 {
			t.Fatalf("expected the drifted balance corrected, got %d", output.Reconciliation.CardsCorrected)
		}

		card, err := target.cardRepo.FindByID(ctx, exported.Snapshot.Cards[0].ID)
		if err != nil {
			t.Fatal(err)
		}
		if card.Balance.String() != "120.5" {
			t.Errorf("expected balance recomputed from transactions, got %s", card.Balance)
		}
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		f := newSnapshotFixture()

		_, err := f.importer.Execute(ctx, ImportSnapshotInput{Raw: []byte("{not json")})
		var genErr *domainError.GeneralError
		if !errors.As(err, &genErr) || genErr.Code != domainError.ErrCodeMalformedSnapshot {
			t.Errorf("expected malformed snapshot error, got %v", err)
		}
	})

	t.Run("rejects malformed transaction dates", func(t *testing.T) {
		f := newSnapshotFixture()

		raw, err := json.Marshal(Snapshot{
			Transactions: []SnapshotTransaction{{
				ID: uuid.New(), Type: "expense",
				Amount: decimal.NewFromInt(10), Date: "03/05/2026",
			}},
			ExportedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatal(err)
		}

		_, err = f.importer.Execute(ctx, ImportSnapshotInput{Raw: raw})
		var genErr *domainError.GeneralError
		if !errors.As(err, &genErr) || genErr.Code != domainError.ErrCodeMalformedSnapshot {
			t.Errorf("expected malformed snapshot error, got %v", err)
		}
	})
}
