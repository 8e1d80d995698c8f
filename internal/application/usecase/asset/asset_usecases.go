// Package asset contains the asset CRUD use cases. Assets are simple valued
// records; LastUpdated is stamped on every mutation so net worth views can
// show staleness.
package asset

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

type CreateAssetInput struct {
	Name  string
	Value decimal.Decimal
}

type UpdateAssetInput struct {
	ID    uuid.UUID
	Name  string
	Value decimal.Decimal
}

type AssetOutput struct {
	Asset *entity.Asset
}

type ListAssetsOutput struct {
	Assets []*entity.Asset
}

type AssetUseCases struct {
	assetRepo adapter.AssetRepository
}

func NewAssetUseCases(assetRepo adapter.AssetRepository) *AssetUseCases {
	return &AssetUseCases{assetRepo: assetRepo}
}

func (u *AssetUseCases) List(ctx context.Context) (*ListAssetsOutput, error) {
	assets, err := u.assetRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListAssetsOutput{Assets: assets}, nil
}

func (u *AssetUseCases) Create(ctx context.Context, input CreateAssetInput) (*AssetOutput, error) {
	if err := validateAsset(input.Name, input.Value); err != nil {
		return nil, err
	}
	created := entity.NewAsset(input.Name, input.Value)
	if err := u.assetRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	return &AssetOutput{Asset: created}, nil
}

func (u *AssetUseCases) Update(ctx context.Context, input UpdateAssetInput) (*AssetOutput, error) {
	if err := validateAsset(input.Name, input.Value); err != nil {
		return nil, err
	}
	existing, err := u.findAsset(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Value = input.Value
	existing.LastUpdated = time.Now().UTC()
	if err := u.assetRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return &AssetOutput{Asset: existing}, nil
}

func (u *AssetUseCases) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.findAsset(ctx, id); err != nil {
		return err
	}
	return u.assetRepo.Delete(ctx, id)
}

func (u *AssetUseCases) findAsset(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	asset, err := u.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domainError.NewGeneralError(
			domainError.ErrCodeAssetNotFound,
			"asset not found",
			domainError.ErrAssetNotFound,
		)
	}
	return asset, nil
}

func validateAsset(name string, value decimal.Decimal) error {
	if name == "" || value.IsNegative() {
		return domainError.NewGeneralError(
			domainError.ErrCodeInvalidAssetValue,
			"asset needs a name and a non-negative value",
			domainError.ErrInvalidAssetValue,
		)
	}
	return nil
}
