package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/settings"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles settings endpoints.
type SettingsController struct {
	settingsUseCases *settings.SettingsUseCases
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(settingsUseCases *settings.SettingsUseCases) *SettingsController {
	return &SettingsController{settingsUseCases: settingsUseCases}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.settingsUseCases.Get(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PATCH /settings requests. Absent fields keep their
// stored values.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.SettingsUpdateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	patch := entity.SettingsPatch{
		PrivacyMode: req.PrivacyMode,
		UserName:    req.UserName,
		Theme:       req.Theme,
	}
	if req.MonthlyIncome != nil {
		income := decimal.NewFromFloat(*req.MonthlyIncome)
		patch.MonthlyIncome = &income
	}
	if req.TotalSavings != nil {
		savings := decimal.NewFromFloat(*req.TotalSavings)
		patch.TotalSavings = &savings
	}

	output, err := c.settingsUseCases.Update(ctx.Request.Context(), patch)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}
