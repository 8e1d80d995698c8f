// Package snapshot implements whole-dataset export and import. The snapshot
// is a single JSON document; import replaces each collection the document
// carries and leaves absent collections untouched.
package snapshot

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// Snapshot is the wire form of a full data export.
type Snapshot struct {
	Transactions  []SnapshotTransaction  `json:"transactions,omitempty"`
	Categories    []SnapshotCategory     `json:"categories,omitempty"`
	Cards         []SnapshotCard         `json:"cards,omitempty"`
	Goals         []SnapshotGoal         `json:"goals,omitempty"`
	Assets        []SnapshotAsset        `json:"assets,omitempty"`
	Subscriptions []SnapshotSubscription `json:"subscriptions,omitempty"`
	Settings      *SnapshotSettings      `json:"settings,omitempty"`
	ExportedAt    time.Time              `json:"exportedAt"`
}

type SnapshotTransaction struct {
	ID            uuid.UUID       `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	CardID        *uuid.UUID      `json:"cardId,omitempty"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type SnapshotCategory struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Type  string    `json:"type"`
	Emoji string    `json:"emoji"`
	Order int       `json:"order"`
}

type SnapshotCard struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Limit    decimal.Decimal `json:"limit"`
	Balance  decimal.Decimal `json:"balance"`
	Archived bool            `json:"archived"`
}

type SnapshotGoal struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     string          `json:"deadline"`
}

type SnapshotAsset struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Value       decimal.Decimal `json:"value"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

type SnapshotSubscription struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Frequency     string          `json:"frequency"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	CardID        *uuid.UUID      `json:"cardId,omitempty"`
	StartDate     string          `json:"startDate"`
	Active        bool            `json:"active"`
	Notes         string          `json:"notes,omitempty"`
}

type SnapshotSettings struct {
	PrivacyMode   bool            `json:"privacyMode"`
	UserName      string          `json:"userName"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	TotalSavings  decimal.Decimal `json:"totalSavings"`
	Theme         string          `json:"theme"`
}

func snapshotTransaction(t *entity.Transaction) SnapshotTransaction {
	return SnapshotTransaction{
		ID:            t.ID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Category:      t.Category,
		Description:   t.Description,
		PaymentMethod: string(t.PaymentMethod),
		CardID:        t.CardID,
		Date:          t.DateString(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (s SnapshotTransaction) toEntity() (*entity.Transaction, error) {
	date, err := time.Parse(entity.DateLayout, s.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Transaction{
		ID:            s.ID,
		Type:          entity.TransactionType(s.Type),
		Amount:        s.Amount,
		Category:      s.Category,
		Description:   s.Description,
		PaymentMethod: entity.PaymentMethod(s.PaymentMethod),
		CardID:        s.CardID,
		Date:          date,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}, nil
}
