package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	extractorAvailable func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Extractor string `json:"extractor"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker, extractorAvailable func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		extractorAvailable: extractorAvailable,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	}
	extractorStatus := "unconfigured"
	if h.extractorAvailable != nil && h.extractorAvailable() {
		extractorStatus = "available"
	}

	response := HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Extractor: extractorStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
