// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

// GeminiExtractor implements the StatementExtractor using Google Gemini.
type GeminiExtractor struct {
	apiKey    string
	modelName string
}

// NewGeminiExtractor creates a new Gemini extractor instance.
func NewGeminiExtractor(apiKey, modelName string) *GeminiExtractor {
	return &GeminiExtractor{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the extractor is properly configured.
func (s *GeminiExtractor) IsAvailable() bool {
	return s.apiKey != ""
}

// Extract sends the PDF statement to Gemini and parses the returned
// transaction list. The caller bounds the call with a context deadline.
func (s *GeminiExtractor) Extract(ctx context.Context, request *adapter.ExtractionRequest) ([]*entity.CandidateTransaction, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini extractor is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)
	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: "application/pdf", Data: request.PDF},
		genai.Text(prompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	candidates, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return candidates, nil
}

// buildPrompt creates the extraction prompt. The user's categories and a
// recent-transaction sample are included so the model can label candidates
// and avoid re-proposing entries that are already recorded.
func (s *GeminiExtractor) buildPrompt(request *adapter.ExtractionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a bank statement parser. Extract every transaction from the attached PDF statement.

For each transaction return:
- date: the transaction date as YYYY-MM-DD
- description: the merchant or transfer description as printed
- amount: a signed number. Purchases and debits are POSITIVE; payments, refunds, and credits are NEGATIVE.
- currency: the ISO currency code of the amount
- category: the best matching category name from the list below, or an empty string if none fits

RULES:
- Extract actual transactions only. Skip running-balance lines, interest summaries, and page headers.
- Never invent transactions. If the document contains none, return an empty array.
- Keep the statement's own amounts; do not convert currencies.

AVAILABLE CATEGORIES:
`)

	expense := 0
	for _, cat := range request.Categories {
		if cat.Type != entity.CategoryTypeExpense {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s\n", cat.Name))
		expense++
	}
	if expense == 0 {
		sb.WriteString("(none)\n")
	}

	if len(request.Existing) > 0 {
		sb.WriteString("\nRECENTLY RECORDED TRANSACTIONS (likely already imported; extract them anyway, they are flagged later):\n")
		sample := request.Existing
		if len(sample) > 50 {
			sample = sample[:50]
		}
		for _, t := range sample {
			sb.WriteString(fmt.Sprintf("- %s %s %s\n", t.DateString(), t.Description, t.Amount.StringFixed(2)))
		}
	}

	sb.WriteString(`
RESPONSE FORMAT: a JSON array only, no additional text:
[{"date": "YYYY-MM-DD", "description": "string", "amount": -12.34, "currency": "HKD", "category": "string or empty"}]
`)

	return sb.String()
}

// geminiCandidate represents one raw item in the Gemini response.
type geminiCandidate struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
}

// parseResponse parses the Gemini response into candidate transactions.
func (s *GeminiExtractor) parseResponse(resp *genai.GenerateContentResponse) ([]*entity.CandidateTransaction, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, domainError.ErrMalformedExtraction
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return nil, domainError.ErrMalformedExtraction
	}

	// Strip markdown code fences if present.
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw []geminiCandidate
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domainError.ErrMalformedExtraction, err)
	}

	candidates := make([]*entity.CandidateTransaction, 0, len(raw))
	for _, r := range raw {
		if r.Date == "" || r.Description == "" {
			continue
		}
		candidates = append(candidates, &entity.CandidateTransaction{
			Date:        r.Date,
			Description: r.Description,
			Amount:      r.Amount,
			Currency:    r.Currency,
			Category:    r.Category,
		})
	}
	return candidates, nil
}
