package card

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

type ArchiveCardInput struct {
	ID       uuid.UUID
	Archived bool
}

type ArchiveCardOutput struct {
	Card *entity.CreditCard
}

// ArchiveCardUseCase toggles a card's archived flag. An archived card drops
// out of active views and stops accepting new expenses, but keeps its
// balance and history so payments can still wind it down.
type ArchiveCardUseCase struct {
	cardRepo adapter.CardRepository
}

func NewArchiveCardUseCase(cardRepo adapter.CardRepository) *ArchiveCardUseCase {
	return &ArchiveCardUseCase{cardRepo: cardRepo}
}

func (u *ArchiveCardUseCase) Execute(ctx context.Context, input ArchiveCardInput) (*ArchiveCardOutput, error) {
	existing, err := findCard(ctx, u.cardRepo, input.ID)
	if err != nil {
		return nil, err
	}

	existing.Archived = input.Archived
	existing.UpdatedAt = time.Now().UTC()
	if err := u.cardRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return &ArchiveCardOutput{Card: existing}, nil
}
