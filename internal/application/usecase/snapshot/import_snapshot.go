package snapshot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/reconciliation"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type ImportSnapshotInput struct {
	// Raw is the snapshot document as uploaded.
	Raw []byte
}

type ImportSnapshotOutput struct {
	Imported       map[string]int
	Reconciliation *reconciliation.RunReconciliationOutput
}

// ImportSnapshotUseCase restores a previously exported snapshot. Collections
// present in the document replace the stored ones wholesale; absent
// collections are left untouched. A full reconciliation pass runs afterwards
// so restored balances self-heal.
type ImportSnapshotUseCase struct {
	transactionRepo  adapter.TransactionRepository
	categoryRepo     adapter.CategoryRepository
	cardRepo         adapter.CardRepository
	goalRepo         adapter.GoalRepository
	assetRepo        adapter.AssetRepository
	subscriptionRepo adapter.SubscriptionRepository
	settingsRepo     adapter.SettingsRepository
	reconcile        *reconciliation.RunReconciliationUseCase
}

func NewImportSnapshotUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	cardRepo adapter.CardRepository,
	goalRepo adapter.GoalRepository,
	assetRepo adapter.AssetRepository,
	subscriptionRepo adapter.SubscriptionRepository,
	settingsRepo adapter.SettingsRepository,
	reconcile *reconciliation.RunReconciliationUseCase,
) *ImportSnapshotUseCase {
	return &ImportSnapshotUseCase{
		transactionRepo:  transactionRepo,
		categoryRepo:     categoryRepo,
		cardRepo:         cardRepo,
		goalRepo:         goalRepo,
		assetRepo:        assetRepo,
		subscriptionRepo: subscriptionRepo,
		settingsRepo:     settingsRepo,
		reconcile:        reconcile,
	}
}

func (u *ImportSnapshotUseCase) Execute(ctx context.Context, input ImportSnapshotInput) (*ImportSnapshotOutput, error) {
	var snap Snapshot
	if err := json.Unmarshal(input.Raw, &snap); err != nil {
		return nil, domainError.NewGeneralError(
			domainError.ErrCodeMalformedSnapshot,
			"malformed snapshot file",
			err,
		)
	}

	imported := map[string]int{}

	if snap.Transactions != nil {
		transactions := make([]*entity.Transaction, 0, len(snap.Transactions))
		for _, s := range snap.Transactions {
			t, err := s.toEntity()
			if err != nil {
				return nil, domainError.NewGeneralError(
					domainError.ErrCodeMalformedSnapshot,
					"snapshot transaction carries a malformed date",
					err,
				)
			}
			transactions = append(transactions, t)
		}
		if err := u.transactionRepo.ReplaceAll(ctx, transactions); err != nil {
			return nil, err
		}
		imported["transactions"] = len(transactions)
	}

	if snap.Categories != nil {
		categories := make([]*entity.Category, 0, len(snap.Categories))
		now := time.Now().UTC()
		for _, s := range snap.Categories {
			categories = append(categories, &entity.Category{
				ID: s.ID, Name: s.Name, Type: entity.CategoryType(s.Type),
				Emoji: s.Emoji, Order: s.Order, CreatedAt: now, UpdatedAt: now,
			})
		}
		if err := u.categoryRepo.ReplaceAll(ctx, categories); err != nil {
			return nil, err
		}
		imported["categories"] = len(categories)
	}

	if snap.Cards != nil {
		cards := make([]*entity.CreditCard, 0, len(snap.Cards))
		now := time.Now().UTC()
		for _, s := range snap.Cards {
			cards = append(cards, &entity.CreditCard{
				ID: s.ID, Name: s.Name, Limit: s.Limit, Balance: s.Balance,
				Archived: s.Archived, CreatedAt: now, UpdatedAt: now,
			})
		}
		if err := u.cardRepo.ReplaceAll(ctx, cards); err != nil {
			return nil, err
		}
		imported["cards"] = len(cards)
	}

	if snap.Goals != nil {
		goals := make([]*entity.Goal, 0, len(snap.Goals))
		now := time.Now().UTC()
		for _, s := range snap.Goals {
			deadline, err := time.Parse(entity.DateLayout, s.Deadline)
			if err != nil {
				return nil, domainError.NewGeneralError(
					domainError.ErrCodeMalformedSnapshot,
					"snapshot goal carries a malformed deadline",
					err,
				)
			}
			goals = append(goals, &entity.Goal{
				ID: s.ID, Name: s.Name, TargetAmount: s.TargetAmount,
				Deadline: deadline, CreatedAt: now, UpdatedAt: now,
			})
		}
		if err := u.goalRepo.ReplaceAll(ctx, goals); err != nil {
			return nil, err
		}
		imported["goals"] = len(goals)
	}

	if snap.Assets != nil {
		assets := make([]*entity.Asset, 0, len(snap.Assets))
		now := time.Now().UTC()
		for _, s := range snap.Assets {
			assets = append(assets, &entity.Asset{
				ID: s.ID, Name: s.Name, Value: s.Value,
				LastUpdated: s.LastUpdated, CreatedAt: now,
			})
		}
		if err := u.assetRepo.ReplaceAll(ctx, assets); err != nil {
			return nil, err
		}
		imported["assets"] = len(assets)
	}

	if snap.Subscriptions != nil {
		subscriptions := make([]*entity.Subscription, 0, len(snap.Subscriptions))
		now := time.Now().UTC()
		for _, s := range snap.Subscriptions {
			startDate, err := time.Parse(entity.DateLayout, s.StartDate)
			if err != nil {
				return nil, domainError.NewGeneralError(
					domainError.ErrCodeMalformedSnapshot,
					"snapshot subscription carries a malformed start date",
					err,
				)
			}
			subscriptions = append(subscriptions, &entity.Subscription{
				ID: s.ID, Name: s.Name, Amount: s.Amount,
				Frequency:     entity.SubscriptionFrequency(s.Frequency),
				Category:      s.Category,
				PaymentMethod: entity.PaymentMethod(s.PaymentMethod),
				CardID:        s.CardID, StartDate: startDate,
				Active: s.Active, Notes: s.Notes,
				CreatedAt: now, UpdatedAt: now,
			})
		}
		if err := u.subscriptionRepo.ReplaceAll(ctx, subscriptions); err != nil {
			return nil, err
		}
		imported["subscriptions"] = len(subscriptions)
	}

	if snap.Settings != nil {
		settings, err := u.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		settings.PrivacyMode = snap.Settings.PrivacyMode
		settings.UserName = snap.Settings.UserName
		settings.MonthlyIncome = snap.Settings.MonthlyIncome
		settings.TotalSavings = snap.Settings.TotalSavings
		settings.Theme = snap.Settings.Theme
		settings.UpdatedAt = time.Now().UTC()
		if err := u.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
		imported["settings"] = 1
	}

	result, err := u.reconcile.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return &ImportSnapshotOutput{Imported: imported, Reconciliation: result}, nil
}
