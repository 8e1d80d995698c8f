package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/dashboard"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	monthSummaryUseCase *dashboard.MonthSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(monthSummaryUseCase *dashboard.MonthSummaryUseCase) *DashboardController {
	return &DashboardController{monthSummaryUseCase: monthSummaryUseCase}
}

// MonthSummary handles GET /dashboard/summary requests. The month query
// parameter takes "YYYY-MM" and defaults to the current month.
func (c *DashboardController) MonthSummary(ctx *gin.Context) {
	output, err := c.monthSummaryUseCase.Execute(ctx.Request.Context(), dashboard.MonthSummaryInput{
		Month: ctx.Query("month"),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToMonthSummaryResponse(output))
}
