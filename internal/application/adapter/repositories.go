// Package adapter defines interfaces that are implemented in the integration layer.
//
// FindByID lookups return (nil, nil) when no record matches; use cases map
// the miss to their coded not-found error.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// FindAll retrieves every transaction, newest date first.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// Create stores a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update fully replaces an existing transaction by ID.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll swaps the whole collection, used by snapshot import.
	ReplaceAll(ctx context.Context, transactions []*entity.Transaction) error
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// FindAll retrieves every category ordered by type then display order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByNameAndType retrieves a category by its unique (name, type) pair.
	FindByNameAndType(ctx context.Context, name string, categoryType entity.CategoryType) (*entity.Category, error)

	// Create stores a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update fully replaces an existing category by ID.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of stored categories.
	Count(ctx context.Context) (int64, error)

	// ReplaceAll swaps the whole collection, used by snapshot import.
	ReplaceAll(ctx context.Context, categories []*entity.Category) error
}

// CardRepository defines persistence operations for credit cards.
type CardRepository interface {
	// FindAll retrieves every card, archived included.
	FindAll(ctx context.Context) ([]*entity.CreditCard, error)

	// FindByID retrieves a card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)

	// Create stores a new card.
	Create(ctx context.Context, card *entity.CreditCard) error

	// Update fully replaces an existing card by ID.
	Update(ctx context.Context, card *entity.CreditCard) error

	// ReplaceAll swaps the whole collection, used by snapshot import.
	ReplaceAll(ctx context.Context, cards []*entity.CreditCard) error
}

// GoalRepository defines persistence operations for savings goals.
type GoalRepository interface {
	FindAll(ctx context.Context) ([]*entity.Goal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	Create(ctx context.Context, goal *entity.Goal) error
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceAll(ctx context.Context, goals []*entity.Goal) error
}

// AssetRepository defines persistence operations for assets.
type AssetRepository interface {
	FindAll(ctx context.Context) ([]*entity.Asset, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)
	Create(ctx context.Context, asset *entity.Asset) error
	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceAll(ctx context.Context, assets []*entity.Asset) error
}

// SubscriptionRepository defines persistence operations for subscriptions.
type SubscriptionRepository interface {
	FindAll(ctx context.Context) ([]*entity.Subscription, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceAll(ctx context.Context, subscriptions []*entity.Subscription) error
}

// SettingsRepository defines persistence operations for the settings singleton.
type SettingsRepository interface {
	// Get retrieves the settings record, creating the default one on first use.
	Get(ctx context.Context) (*entity.Settings, error)

	// Update stores the full settings record.
	Update(ctx context.Context, settings *entity.Settings) error
}
