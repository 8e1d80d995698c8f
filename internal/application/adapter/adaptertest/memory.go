// Package adaptertest provides in-memory repository implementations for
// use case tests. They mirror the persistence layer's contract, including
// the (nil, nil) not-found convention.
package adaptertest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// TransactionRepository is an in-memory adapter.TransactionRepository.
type TransactionRepository struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]*entity.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		copied := *t
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *t
	r.transactions[t.ID] = &copied
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *entity.Transaction) error {
	return r.Create(ctx, t)
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.transactions, id)
	return nil
}

func (r *TransactionRepository) ReplaceAll(ctx context.Context, transactions []*entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = make(map[uuid.UUID]*entity.Transaction, len(transactions))
	for _, t := range transactions {
		copied := *t
		r.transactions[t.ID] = &copied
	}
	return nil
}

// CategoryRepository is an in-memory adapter.CategoryRepository.
type CategoryRepository struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		copied := *c
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *CategoryRepository) FindByNameAndType(ctx context.Context, name string, categoryType entity.CategoryType) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name && c.Type == categoryType {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *c
	r.categories[c.ID] = &copied
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	return r.Create(ctx, c)
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.categories)), nil
}

func (r *CategoryRepository) ReplaceAll(ctx context.Context, categories []*entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		copied := *c
		r.categories[c.ID] = &copied
	}
	return nil
}

// CardRepository is an in-memory adapter.CardRepository.
type CardRepository struct {
	mu    sync.Mutex
	cards map[uuid.UUID]*entity.CreditCard
}

func NewCardRepository() *CardRepository {
	return &CardRepository{cards: make(map[uuid.UUID]*entity.CreditCard)}
}

func (r *CardRepository) FindAll(ctx context.Context) ([]*entity.CreditCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.CreditCard, 0, len(r.cards))
	for _, c := range r.cards {
		copied := *c
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *CardRepository) Create(ctx context.Context, c *entity.CreditCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *c
	r.cards[c.ID] = &copied
	return nil
}

func (r *CardRepository) Update(ctx context.Context, c *entity.CreditCard) error {
	return r.Create(ctx, c)
}

func (r *CardRepository) ReplaceAll(ctx context.Context, cards []*entity.CreditCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards = make(map[uuid.UUID]*entity.CreditCard, len(cards))
	for _, c := range cards {
		copied := *c
		r.cards[c.ID] = &copied
	}
	return nil
}

// GoalRepository is an in-memory adapter.GoalRepository.
type GoalRepository struct {
	mu    sync.Mutex
	goals map[uuid.UUID]*entity.Goal
}

func NewGoalRepository() *GoalRepository {
	return &GoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *GoalRepository) FindAll(ctx context.Context) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		copied := *g
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Deadline.Before(out[j].Deadline) })
	return out, nil
}

func (r *GoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (r *GoalRepository) Create(ctx context.Context, g *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *g
	r.goals[g.ID] = &copied
	return nil
}

func (r *GoalRepository) Update(ctx context.Context, g *entity.Goal) error {
	return r.Create(ctx, g)
}

func (r *GoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.goals, id)
	return nil
}

func (r *GoalRepository) ReplaceAll(ctx context.Context, goals []*entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals = make(map[uuid.UUID]*entity.Goal, len(goals))
	for _, g := range goals {
		copied := *g
		r.goals[g.ID] = &copied
	}
	return nil
}

// AssetRepository is an in-memory adapter.AssetRepository.
type AssetRepository struct {
	mu     sync.Mutex
	assets map[uuid.UUID]*entity.Asset
}

func NewAssetRepository() *AssetRepository {
	return &AssetRepository{assets: make(map[uuid.UUID]*entity.Asset)}
}

func (r *AssetRepository) FindAll(ctx context.Context) ([]*entity.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		copied := *a
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *AssetRepository) Create(ctx context.Context, a *entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *a
	r.assets[a.ID] = &copied
	return nil
}

func (r *AssetRepository) Update(ctx context.Context, a *entity.Asset) error {
	return r.Create(ctx, a)
}

func (r *AssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.assets, id)
	return nil
}

func (r *AssetRepository) ReplaceAll(ctx context.Context, assets []*entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets = make(map[uuid.UUID]*entity.Asset, len(assets))
	for _, a := range assets {
		copied := *a
		r.assets[a.ID] = &copied
	}
	return nil
}

// SubscriptionRepository is an in-memory adapter.SubscriptionRepository.
type SubscriptionRepository struct {
	mu            sync.Mutex
	subscriptions map[uuid.UUID]*entity.Subscription
}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{subscriptions: make(map[uuid.UUID]*entity.Subscription)}
}

func (r *SubscriptionRepository) FindAll(ctx context.Context) ([]*entity.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Subscription, 0, len(r.subscriptions))
	for _, s := range r.subscriptions {
		copied := *s
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subscriptions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *entity.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.subscriptions[s.ID] = &copied
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *entity.Subscription) error {
	return r.Create(ctx, s)
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subscriptions, id)
	return nil
}

func (r *SubscriptionRepository) ReplaceAll(ctx context.Context, subscriptions []*entity.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscriptions = make(map[uuid.UUID]*entity.Subscription, len(subscriptions))
	for _, s := range subscriptions {
		copied := *s
		r.subscriptions[s.ID] = &copied
	}
	return nil
}

// SettingsRepository is an in-memory adapter.SettingsRepository.
type SettingsRepository struct {
	mu       sync.Mutex
	settings *entity.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		r.settings = entity.DefaultSettings()
	}
	copied := *r.settings
	return &copied, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.settings = &copied
	return nil
}
