package savings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
)

type GetNetWorthOutput struct {
	TotalSavings    decimal.Decimal `json:"totalSavings"`
	AssetsTotal     decimal.Decimal `json:"assetsTotal"`
	CardLiabilities decimal.Decimal `json:"cardLiabilities"`
	NetWorth        decimal.Decimal `json:"netWorth"`
}

type GetNetWorthUseCase struct {
	settingsRepo adapter.SettingsRepository
	assetRepo    adapter.AssetRepository
	cardRepo     adapter.CardRepository
}

func NewGetNetWorthUseCase(
	settingsRepo adapter.SettingsRepository,
	assetRepo adapter.AssetRepository,
	cardRepo adapter.CardRepository,
) *GetNetWorthUseCase {
	return &GetNetWorthUseCase{
		settingsRepo: settingsRepo,
		assetRepo:    assetRepo,
		cardRepo:     cardRepo,
	}
}

func (u *GetNetWorthUseCase) Execute(ctx context.Context) (*GetNetWorthOutput, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := u.assetRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := u.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	assetsTotal := decimal.Zero
	for _, a := range assets {
		assetsTotal = assetsTotal.Add(a.Value)
	}
	liabilities := decimal.Zero
	for _, c := range cards {
		if !c.Archived {
			liabilities = liabilities.Add(c.Balance)
		}
	}

	return &GetNetWorthOutput{
		TotalSavings:    settings.TotalSavings,
		AssetsTotal:     assetsTotal,
		CardLiabilities: liabilities,
		NetWorth:        NetWorth(settings, assets, cards),
	}, nil
}
