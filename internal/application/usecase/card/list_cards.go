package card

import (
	"context"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

type ListCardsInput struct {
	// IncludeArchived adds archived cards to the listing.
	IncludeArchived bool
}

type ListCardsOutput struct {
	Cards []*entity.CreditCard
}

type ListCardsUseCase struct {
	cardRepo adapter.CardRepository
}

func NewListCardsUseCase(cardRepo adapter.CardRepository) *ListCardsUseCase {
	return &ListCardsUseCase{cardRepo: cardRepo}
}

func (u *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	all, err := u.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if input.IncludeArchived {
		return &ListCardsOutput{Cards: all}, nil
	}

	active := make([]*entity.CreditCard, 0, len(all))
	for _, c := range all {
		if !c.Archived {
			active = append(active, c)
		}
	}
	return &ListCardsOutput{Cards: active}, nil
}
