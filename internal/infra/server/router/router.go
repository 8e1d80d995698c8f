// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	transactionController  *controller.TransactionController
	categoryController     *controller.CategoryController
	creditCardController   *controller.CreditCardController
	goalController         *controller.GoalController
	assetController        *controller.AssetController
	subscriptionController *controller.SubscriptionController
	settingsController     *controller.SettingsController
	statementController    *controller.StatementController
	dashboardController    *controller.DashboardController
	snapshotController     *controller.SnapshotController
	extractionRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	creditCardController *controller.CreditCardController,
	goalController *controller.GoalController,
	assetController *controller.AssetController,
	subscriptionController *controller.SubscriptionController,
	settingsController *controller.SettingsController,
	statementController *controller.StatementController,
	dashboardController *controller.DashboardController,
	snapshotController *controller.SnapshotController,
	extractionRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		transactionController:  transactionController,
		categoryController:     categoryController,
		creditCardController:   creditCardController,
		goalController:         goalController,
		assetController:        assetController,
		subscriptionController: subscriptionController,
		settingsController:     settingsController,
		statementController:    statementController,
		dashboardController:    dashboardController,
		snapshotController:     snapshotController,
		extractionRateLimiter:  extractionRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
			categories.POST("/reorder", r.categoryController.Reorder)
		}

		cards := v1.Group("/cards")
		{
			cards.GET("", r.creditCardController.List)
			cards.POST("", r.creditCardController.Create)
			cards.PUT("/:id", r.creditCardController.Update)
			cards.PATCH("/:id/archive", r.creditCardController.Archive)
			cards.POST("/:id/pay", r.creditCardController.Pay)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.GET("/aggregate", r.goalController.Aggregate)
			goals.POST("", r.goalController.Create)
			goals.PUT("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
		}

		assets := v1.Group("/assets")
		{
			assets.GET("", r.assetController.List)
			assets.POST("", r.assetController.Create)
			assets.PUT("/:id", r.assetController.Update)
			assets.DELETE("/:id", r.assetController.Delete)
		}
		v1.GET("/net-worth", r.assetController.NetWorth)

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.GET("", r.subscriptionController.List)
			subscriptions.GET("/summary", r.subscriptionController.Summary)
			subscriptions.POST("", r.subscriptionController.Create)
			subscriptions.PUT("/:id", r.subscriptionController.Update)
			subscriptions.DELETE("/:id", r.subscriptionController.Delete)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", r.settingsController.Get)
			settings.PATCH("", r.settingsController.Update)
		}

		statement := v1.Group("/statement")
		{
			statement.POST("/extract", r.extractionRateLimiter.Middleware(), r.statementController.Extract)
			statement.POST("/import", r.statementController.Import)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.MonthSummary)
		}

		snapshot := v1.Group("/snapshot")
		{
			snapshot.GET("/export", r.snapshotController.Export)
			snapshot.POST("/import", r.snapshotController.Import)
		}
	}
}
