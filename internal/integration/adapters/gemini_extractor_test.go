package adapters

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(text)}},
		}},
	}
}

func TestGeminiExtractorIsAvailable(t *testing.T) {
	if NewGeminiExtractor("", "gemini-2.0-flash").IsAvailable() {
		t.Error("extractor without an API key should report unavailable")
	}
	if !NewGeminiExtractor("key", "gemini-2.0-flash").IsAvailable() {
		t.Error("configured extractor should report available")
	}
}

func TestGeminiExtractorParseResponse(t *testing.T) {
	extractor := NewGeminiExtractor("key", "gemini-2.0-flash")

	t.Run("parses a plain JSON array", func(t *testing.T) {
		resp := textResponse(`[{"date":"2026-03-05","description":"UBER TRIP","amount":45.50,"currency":"HKD","category":"Transport"}]`)

		candidates, err := extractor.parseResponse(resp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(candidates))
		}
		got := candidates[0]
		if got.Date != "2026-03-05" || got.Description != "UBER TRIP" || got.Category != "Transport" {
			t.Errorf("unexpected candidate: %+v", got)
		}
		if !got.Amount.Equal(decimal.NewFromFloat(45.50)) {
			t.Errorf("expected amount 45.50, got %s", got.Amount)
		}
	})

	t.Run("strips markdown code fences", func(t *testing.T) {
		resp := textResponse("```json\n[{\"date\":\"2026-03-05\",\"description\":\"PAYMENT\",\"amount\":-80,\"currency\":\"HKD\",\"category\":\"\"}]\n```")

		candidates, err := extractor.parseResponse(resp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) != 1 || !candidates[0].Amount.Equal(decimal.NewFromInt(-80)) {
			t.Errorf("expected the fenced payload parsed, got %v", candidates)
		}
	})

	t.Run("drops items missing date or description", func(t *testing.T) {
		resp := textResponse(`[
			{"date":"","description":"NO DATE","amount":10},
			{"date":"2026-03-05","description":"","amount":10},
			{"date":"2026-03-05","description":"KEPT","amount":10}
		]`)

		candidates, err := extractor.parseResponse(resp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) != 1 || candidates[0].Description != "KEPT" {
			t.Errorf("expected only the complete item kept, got %v", candidates)
		}
	})

	t.Run("empty array is a valid empty statement", func(t *testing.T) {
		candidates, err := extractor.parseResponse(textResponse("[]"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) != 0 {
			t.Errorf("expected no candidates, got %d", len(candidates))
		}
	})

	t.Run("rejects non-JSON text", func(t *testing.T) {
		_, err := extractor.parseResponse(textResponse("I could not read the statement."))
		if !errors.Is(err, domainError.ErrMalformedExtraction) {
			t.Errorf("expected malformed extraction error, got %v", err)
		}
	})

	t.Run("rejects an empty response", func(t *testing.T) {
		_, err := extractor.parseResponse(&genai.GenerateContentResponse{})
		if !errors.Is(err, domainError.ErrMalformedExtraction) {
			t.Errorf("expected malformed extraction error, got %v", err)
		}
	})
}

func TestGeminiExtractorBuildPrompt(t *testing.T) {
	extractor := NewGeminiExtractor("key", "gemini-2.0-flash")

	request := &adapter.ExtractionRequest{
		Categories: []*entity.Category{
			entity.NewCategory("Food & Dining", entity.CategoryTypeExpense, "", 1),
			entity.NewCategory("Salary", entity.CategoryTypeIncome, "", 1),
		},
		Existing: []*entity.Transaction{
			entity.NewTransaction(
				entity.TransactionTypeExpense, decimal.NewFromFloat(45.50),
				"Transport", "UBER TRIP", entity.PaymentMethodBank, nil,
				time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			),
		},
	}

	prompt := extractor.buildPrompt(request)

	if !strings.Contains(prompt, "- Food & Dining") {
		t.Error("expected expense categories listed")
	}
	if strings.Contains(prompt, "- Salary") {
		t.Error("income categories should not be offered for labeling")
	}
	if !strings.Contains(prompt, "2026-03-05 UBER TRIP 45.50") {
		t.Error("expected the recent-transaction sample included")
	}
}
