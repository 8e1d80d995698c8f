// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeIncome            TransactionType = "income"
	TransactionTypeExpense           TransactionType = "expense"
	TransactionTypeCreditCardPayment TransactionType = "credit_card_payment"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "Cash"
	PaymentMethodCreditCard PaymentMethod = "CreditCard"
	PaymentMethodPayMe      PaymentMethod = "PayMe"
	PaymentMethodOctopus    PaymentMethod = "Octopus"
	PaymentMethodBank       PaymentMethod = "Bank"
)

// DateLayout is the canonical calendar-date format for transaction dates.
// Transactions carry no time component.
const DateLayout = "2006-01-02"

// Transaction represents a single income, expense, or credit card payment.
// Amount is always positive; direction is encoded by Type, never by sign.
type Transaction struct {
	ID            uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	Category      string
	Description   string
	PaymentMethod PaymentMethod
	CardID        *uuid.UUID // Set iff paid by credit card or paying one off
	Date          time.Time  // Calendar date, truncated to midnight UTC
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	description string,
	paymentMethod PaymentMethod,
	cardID *uuid.UUID,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		Type:          transactionType,
		Amount:        amount,
		Category:      category,
		Description:   description,
		PaymentMethod: paymentMethod,
		CardID:        cardID,
		Date:          TruncateDate(date),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DateString returns the transaction date in the canonical YYYY-MM-DD form.
func (t *Transaction) DateString() string {
	return t.Date.Format(DateLayout)
}

// TruncateDate strips the time component from a date.
func TruncateDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// IsValidTransactionType reports whether the given type is one of the
// supported transaction types.
func IsValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeCreditCardPayment:
		return true
	}
	return false
}

// IsValidPaymentMethod reports whether the given payment method is supported.
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodPayMe, PaymentMethodOctopus, PaymentMethodBank:
		return true
	}
	return false
}
