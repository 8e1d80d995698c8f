package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/asset"
	"github.com/pocketledger/backend/internal/application/usecase/savings"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// AssetController handles asset and net worth endpoints.
type AssetController struct {
	assetUseCases   *asset.AssetUseCases
	netWorthUseCase *savings.GetNetWorthUseCase
}

// NewAssetController creates a new asset controller instance.
func NewAssetController(
	assetUseCases *asset.AssetUseCases,
	netWorthUseCase *savings.GetNetWorthUseCase,
) *AssetController {
	return &AssetController{
		assetUseCases:   assetUseCases,
		netWorthUseCase: netWorthUseCase,
	}
}

// List handles GET /assets requests.
func (c *AssetController) List(ctx *gin.Context) {
	output, err := c.assetUseCases.List(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	assets := make([]dto.AssetResponseDTO, len(output.Assets))
	for i, a := range output.Assets {
		assets[i] = dto.ToAssetResponse(a)
	}
	ctx.JSON(http.StatusOK, dto.AssetListResponseDTO{Assets: assets})
}

// Create handles POST /assets requests.
func (c *AssetController) Create(ctx *gin.Context) {
	var req dto.AssetRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.assetUseCases.Create(ctx.Request.Context(), asset.CreateAssetInput{
		Name:  req.Name,
		Value: decimal.NewFromFloat(req.Value),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToAssetResponse(output.Asset))
}

// Update handles PUT /assets/:id requests.
func (c *AssetController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid asset ID"})
		return
	}
	var req dto.AssetRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.assetUseCases.Update(ctx.Request.Context(), asset.UpdateAssetInput{
		ID:    id,
		Name:  req.Name,
		Value: decimal.NewFromFloat(req.Value),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAssetResponse(output.Asset))
}

// Delete handles DELETE /assets/:id requests.
func (c *AssetController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid asset ID"})
		return
	}
	if err := c.assetUseCases.Delete(ctx.Request.Context(), id); err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// NetWorth handles GET /net-worth requests.
func (c *AssetController) NetWorth(ctx *gin.Context) {
	output, err := c.netWorthUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NetWorthResponseDTO{
		TotalSavings:    output.TotalSavings.StringFixed(2),
		AssetsTotal:     output.AssetsTotal.StringFixed(2),
		CardLiabilities: output.CardLiabilities.StringFixed(2),
		NetWorth:        output.NetWorth.StringFixed(2),
	})
}
