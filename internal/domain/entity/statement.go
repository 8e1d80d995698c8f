// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// CandidateTransaction is a raw transaction proposed by the statement
// extraction collaborator. Amount is signed: negative for credits/payments,
// positive for debits/purchases.
type CandidateTransaction struct {
	Date        string // YYYY-MM-DD as extracted
	Description string
	Amount      decimal.Decimal
	Currency    string
	Category    string // May be empty when the extractor could not assign one
}

// ReviewableTransaction is a candidate enriched by the reconciliation engine,
// ready for user review. The duplicate flag is advisory only; duplicates stay
// selectable for import.
type ReviewableTransaction struct {
	CandidateTransaction
	IsDuplicate bool
	Selected    bool
}
