// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// UncategorizedName is the fallback category assigned when no real category
// can be resolved for an imported transaction.
const UncategorizedName = "Uncategorized"

// CreditCardPaymentCategoryName is the category used for card payoff entries.
const CreditCardPaymentCategoryName = "Credit Card Payment"

// Category represents a transaction category. Name is unique within a type;
// Order is the display position among same-type categories.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Emoji     string
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Order defaulting (next slot within the type) is applied in the use case
// before calling this constructor.
func NewCategory(name string, categoryType CategoryType, emoji string, order int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Emoji:     emoji,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategories returns the categories seeded into an empty install.
func DefaultCategories() []*Category {
	defs := []struct {
		name  string
		ctype CategoryType
		emoji string
	}{
		{"Food", CategoryTypeExpense, "🍔"},
		{"Transport", CategoryTypeExpense, "🚗"},
		{"Entertainment", CategoryTypeExpense, "🎬"},
		{"Shopping", CategoryTypeExpense, "🛍️"},
		{"Health", CategoryTypeExpense, "❤️‍🩹"},
		{"Utilities", CategoryTypeExpense, "💡"},
		{"Salary", CategoryTypeIncome, "💰"},
		{"Gift", CategoryTypeIncome, "🎁"},
		{"Payback", CategoryTypeIncome, "🤝"},
	}

	categories := make([]*Category, 0, len(defs))
	orderByType := map[CategoryType]int{}
	for _, d := range defs {
		orderByType[d.ctype]++
		categories = append(categories, NewCategory(d.name, d.ctype, d.emoji, orderByType[d.ctype]))
	}
	return categories
}
