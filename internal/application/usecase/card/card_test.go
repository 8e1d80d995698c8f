package card

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter/adaptertest"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

func TestCreateCardUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a card with zero balance", func(t *testing.T) {
		repo := adaptertest.NewCardRepository()
		useCase := NewCreateCardUseCase(repo)

		output, err := useCase.Execute(ctx, CreateCardInput{Name: "Visa", Limit: decimal.NewFromInt(10000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Card.Balance.IsZero() {
			t.Errorf("expected zero starting balance, got %s", output.Card.Balance)
		}
		if output.Card.Archived {
			t.Error("new cards should not be archived")
		}
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		useCase := NewCreateCardUseCase(adaptertest.NewCardRepository())

		_, err := useCase.Execute(ctx, CreateCardInput{Limit: decimal.NewFromInt(1000)})
		var cardErr *domainError.CardError
		if !errors.As(err, &cardErr) || cardErr.Code != domainError.ErrCodeMissingCardFields {
			t.Errorf("expected missing fields error, got %v", err)
		}
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		useCase := NewCreateCardUseCase(adaptertest.NewCardRepository())

		_, err := useCase.Execute(ctx, CreateCardInput{Name: "Visa", Limit: decimal.NewFromInt(-1)})
		var cardErr *domainError.CardError
		if !errors.As(err, &cardErr) || cardErr.Code != domainError.ErrCodeInvalidCardLimit {
			t.Errorf("expected invalid limit error, got %v", err)
		}
	})

	t.Run("a zero limit is allowed", func(t *testing.T) {
		useCase := NewCreateCardUseCase(adaptertest.NewCardRepository())

		if _, err := useCase.Execute(ctx, CreateCardInput{Name: "No Limit Card"}); err != nil {
			t.Errorf("expected zero limit accepted, got %v", err)
		}
	})
}

func TestUpdateCardUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("edits name and limit without touching the balance", func(t *testing.T) {
		repo := adaptertest.NewCardRepository()
		card := entity.NewCreditCard("Visa", decimal.NewFromInt(10000))
		card.Balance = decimal.NewFromInt(545)
		if err := repo.Create(ctx, card); err != nil {
			t.Fatal(err)
		}
		useCase := NewUpdateCardUseCase(repo)

		output, err := useCase.Execute(ctx, UpdateCardInput{
			ID: card.ID, Name: "Visa Platinum", Limit: decimal.NewFromInt(20000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Card.Name != "Visa Platinum" {
			t.Errorf("expected renamed card, got %q", output.Card.Name)
		}
		if !output.Card.Balance.Equal(decimal.NewFromInt(545)) {
			t.Errorf("expected balance untouched, got %s", output.Card.Balance)
		}
	})

	t.Run("unknown card is not found", func(t *testing.T) {
		useCase := NewUpdateCardUseCase(adaptertest.NewCardRepository())

		_, err := useCase.Execute(ctx, UpdateCardInput{
			ID: uuid.New(), Name: "Ghost", Limit: decimal.NewFromInt(100),
		})
		var cardErr *domainError.CardError
		if !errors.As(err, &cardErr) || cardErr.Code != domainError.ErrCodeCardNotFound {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestArchiveCardUseCase(t *testing.T) {
	ctx := context.Background()

	repo := adaptertest.NewCardRepository()
	card := entity.NewCreditCard("Old Card", decimal.NewFromInt(5000))
	card.Balance = decimal.NewFromInt(200)
	if err := repo.Create(ctx, card); err != nil {
		t.Fatal(err)
	}
	useCase := NewArchiveCardUseCase(repo)

	output, err := useCase.Execute(ctx, ArchiveCardInput{ID: card.ID, Archived: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Card.Archived {
		t.Error("expected card archived")
	}
	if !output.Card.Balance.Equal(decimal.NewFromInt(200)) {
		t.Errorf("archiving should keep the balance, got %s", output.Card.Balance)
	}

	// Unarchive is the same operation with the flag flipped.
	output, err = useCase.Execute(ctx, ArchiveCardInput{ID: card.ID, Archived: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Card.Archived {
		t.Error("expected card restored")
	}
}

func TestListCardsUseCase(t *testing.T) {
	ctx := context.Background()

	repo := adaptertest.NewCardRepository()
	active := entity.NewCreditCard("Visa", decimal.NewFromInt(10000))
	archived := entity.NewCreditCard("Old Card", decimal.NewFromInt(5000))
	archived.Archived = true
	for _, c := range []*entity.CreditCard{active, archived} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatal(err)
		}
	}
	useCase := NewListCardsUseCase(repo)

	t.Run("hides archived cards by default", func(t *testing.T) {
		output, err := useCase.Execute(ctx, ListCardsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Cards) != 1 || output.Cards[0].Name != "Visa" {
			t.Errorf("expected only the active card, got %v", output.Cards)
		}
	})

	t.Run("includes archived cards on request", func(t *testing.T) {
		output, err := useCase.Execute(ctx, ListCardsInput{IncludeArchived: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Cards) != 2 {
			t.Errorf("expected both cards, got %d", len(output.Cards))
		}
	})
}
