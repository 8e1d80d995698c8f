// Package statement contains the statement extraction and reconciliation
// use cases: turning a PDF bank statement into reviewed, imported
// transactions.
package statement

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// categoryRule maps description keywords to a fragment of a category name.
// Rules are tried in order; the first keyword hit wins.
type categoryRule struct {
	keywords     []string
	nameFragment string
}

var categoryRules = []categoryRule{
	{keywords: []string{"grab", "uber", "taxi", "transport"}, nameFragment: "transport"},
	{keywords: []string{"restaurant", "cafe", "food", "dining", "gelato"}, nameFragment: "food"},
	{keywords: []string{"netflix", "spotify", "entertainment"}, nameFragment: "entertainment"},
	{keywords: []string{"shop", "store", "mall"}, nameFragment: "shop"},
}

// duplicateTolerance is the absolute-amount difference below which two
// same-day transactions are considered the same entry.
var duplicateTolerance = decimal.NewFromFloat(0.01)

// Reconcile enriches raw extraction candidates for user review: it fills in
// missing categories and flags likely duplicates against existing
// transactions. Every candidate comes back selected; the duplicate flag is
// advisory and the user deselects manually.
func Reconcile(
	candidates []*entity.CandidateTransaction,
	categories []*entity.Category,
	existing []*entity.Transaction,
) []*entity.ReviewableTransaction {
	reviewable := make([]*entity.ReviewableTransaction, len(candidates))
	for i, c := range candidates {
		enriched := *c
		if enriched.Category == "" {
			enriched.Category = inferCategory(&enriched, categories)
		}
		reviewable[i] = &entity.ReviewableTransaction{
			CandidateTransaction: enriched,
			IsDuplicate:          isDuplicate(&enriched, existing),
			Selected:             true,
		}
	}
	return reviewable
}

// inferCategory assigns a category to a candidate the extractor left
// unlabeled. Negative amounts are card credits and prefer the literal
// "Credit Card Payment" category; positive amounts go through the keyword
// rules against the user's expense categories.
func inferCategory(c *entity.CandidateTransaction, categories []*entity.Category) string {
	expense := make([]*entity.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.Type == entity.CategoryTypeExpense {
			expense = append(expense, cat)
		}
	}

	if c.Amount.IsNegative() {
		for _, cat := range expense {
			if cat.Name == entity.CreditCardPaymentCategoryName {
				return cat.Name
			}
		}
		return firstName(expense)
	}

	description := strings.ToLower(c.Description)
	for _, rule := range categoryRules {
		if !matchesAny(description, rule.keywords) {
			continue
		}
		for _, cat := range expense {
			if strings.Contains(strings.ToLower(cat.Name), rule.nameFragment) {
				return cat.Name
			}
		}
		// Keyword matched but the user has no such category.
		return entity.UncategorizedName
	}
	return firstName(expense)
}

func matchesAny(description string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(description, k) {
			return true
		}
	}
	return false
}

func firstName(expense []*entity.Category) string {
	if len(expense) == 0 {
		return entity.UncategorizedName
	}
	return expense[0].Name
}

// isDuplicate reports whether an existing transaction shares the candidate's
// exact date string and absolute amount within the tolerance. Direction is
// ignored: a payment and a purchase of the same magnitude on the same day
// are both plausible re-imports.
func isDuplicate(c *entity.CandidateTransaction, existing []*entity.Transaction) bool {
	candidateAbs := c.Amount.Abs()
	for _, t := range existing {
		if t.DateString() != c.Date {
			continue
		}
		if t.Amount.Abs().Sub(candidateAbs).Abs().LessThan(duplicateTolerance) {
			return true
		}
	}
	return false
}
