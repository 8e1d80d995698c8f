package snapshot

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
)

type ExportSnapshotOutput struct {
	Snapshot *Snapshot
}

// ExportSnapshotUseCase serializes every collection plus the settings
// singleton into one snapshot document.
type ExportSnapshotUseCase struct {
	transactionRepo  adapter.TransactionRepository
	categoryRepo     adapter.CategoryRepository
	cardRepo         adapter.CardRepository
	goalRepo         adapter.GoalRepository
	assetRepo        adapter.AssetRepository
	subscriptionRepo adapter.SubscriptionRepository
	settingsRepo     adapter.SettingsRepository
}

func NewExportSnapshotUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	cardRepo adapter.CardRepository,
	goalRepo adapter.GoalRepository,
	assetRepo adapter.AssetRepository,
	subscriptionRepo adapter.SubscriptionRepository,
	settingsRepo adapter.SettingsRepository,
) *ExportSnapshotUseCase {
	return &ExportSnapshotUseCase{
		transactionRepo:  transactionRepo,
		categoryRepo:     categoryRepo,
		cardRepo:         cardRepo,
		goalRepo:         goalRepo,
		assetRepo:        assetRepo,
		subscriptionRepo: subscriptionRepo,
		settingsRepo:     settingsRepo,
	}
}

func (u *ExportSnapshotUseCase) Execute(ctx context.Context) (*ExportSnapshotOutput, error) {
	out := &Snapshot{ExportedAt: time.Now().UTC()}

	transactions, err := u.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range transactions {
		out.Transactions = append(out.Transactions, snapshotTransaction(t))
	}

	categories, err := u.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, SnapshotCategory{
			ID: c.ID, Name: c.Name, Type: string(c.Type), Emoji: c.Emoji, Order: c.Order,
		})
	}

	cards, err := u.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cards {
		out.Cards = append(out.Cards, SnapshotCard{
			ID: c.ID, Name: c.Name, Limit: c.Limit, Balance: c.Balance, Archived: c.Archived,
		})
	}

	goals, err := u.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		out.Goals = append(out.Goals, SnapshotGoal{
			ID: g.ID, Name: g.Name, TargetAmount: g.TargetAmount,
			Deadline: g.Deadline.Format("2006-01-02"),
		})
	}

	assets, err := u.assetRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range assets {
		out.Assets = append(out.Assets, SnapshotAsset{
			ID: a.ID, Name: a.Name, Value: a.Value, LastUpdated: a.LastUpdated,
		})
	}

	subscriptions, err := u.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range subscriptions {
		out.Subscriptions = append(out.Subscriptions, SnapshotSubscription{
			ID: s.ID, Name: s.Name, Amount: s.Amount, Frequency: string(s.Frequency),
			Category: s.Category, PaymentMethod: string(s.PaymentMethod), CardID: s.CardID,
			StartDate: s.StartDate.Format("2006-01-02"), Active: s.Active, Notes: s.Notes,
		})
	}

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	out.Settings = &SnapshotSettings{
		PrivacyMode:   settings.PrivacyMode,
		UserName:      settings.UserName,
		MonthlyIncome: settings.MonthlyIncome,
		TotalSavings:  settings.TotalSavings,
		Theme:         settings.Theme,
	}

	return &ExportSnapshotOutput{Snapshot: out}, nil
}
