package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// cardRepository implements the adapter.CardRepository interface. There is
// no Delete: cards are archived so balance history survives.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository instance.
func NewCardRepository(db *gorm.DB) adapter.CardRepository {
	return &cardRepository{db: db}
}

// FindAll retrieves every card, archived included.
func (r *cardRepository) FindAll(ctx context.Context) ([]*entity.CreditCard, error) {
	var cardModels []model.CreditCardModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.CreditCard, len(cardModels))
	for i, cm := range cardModels {
		cards[i] = cm.ToEntity()
	}
	return cards, nil
}

// FindByID retrieves a card by its ID.
func (r *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	var cardModel model.CreditCardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// Create creates a new card in the database.
func (r *cardRepository) Create(ctx context.Context, card *entity.CreditCard) error {
	return r.db.WithContext(ctx).Create(model.CreditCardFromEntity(card)).Error
}

// Update fully replaces an existing card by ID.
func (r *cardRepository) Update(ctx context.Context, card *entity.CreditCard) error {
	return r.db.WithContext(ctx).Save(model.CreditCardFromEntity(card)).Error
}

// ReplaceAll swaps the whole collection inside a single database transaction.
func (r *cardRepository) ReplaceAll(ctx context.Context, cards []*entity.CreditCard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CreditCardModel{}).Error; err != nil {
			return err
		}
		for _, c := range cards {
			if err := tx.Create(model.CreditCardFromEntity(c)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
