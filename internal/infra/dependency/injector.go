// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/config"
	"github.com/pocketledger/backend/internal/application/usecase/asset"
	"github.com/pocketledger/backend/internal/application/usecase/card"
	"github.com/pocketledger/backend/internal/application/usecase/category"
	"github.com/pocketledger/backend/internal/application/usecase/dashboard"
	"github.com/pocketledger/backend/internal/application/usecase/goal"
	"github.com/pocketledger/backend/internal/application/usecase/reconciliation"
	"github.com/pocketledger/backend/internal/application/usecase/savings"
	"github.com/pocketledger/backend/internal/application/usecase/settings"
	"github.com/pocketledger/backend/internal/application/usecase/snapshot"
	"github.com/pocketledger/backend/internal/application/usecase/statement"
	"github.com/pocketledger/backend/internal/application/usecase/subscription"
	"github.com/pocketledger/backend/internal/application/usecase/transaction"
	"github.com/pocketledger/backend/internal/infra/server/router"
	"github.com/pocketledger/backend/internal/integration/adapters"
	"github.com/pocketledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocketledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// Startup tasks main runs before serving traffic.
	SeedCategories *category.SeedCategoriesUseCase
	Reconcile      *reconciliation.RunReconciliationUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	cardRepo := persistence.NewCardRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	assetRepo := persistence.NewAssetRepository(db)
	subscriptionRepo := persistence.NewSubscriptionRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	extractor := adapters.NewGeminiExtractor(cfg.Extractor.GeminiAPIKey, cfg.Extractor.Model)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Create reconciliation use case (startup and post-import self-heal)
	reconcileUseCase := reconciliation.NewRunReconciliationUseCase(transactionRepo, cardRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, cardRepo, settingsRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, cardRepo, settingsRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, cardRepo, settingsRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	reorderCategoriesUseCase := category.NewReorderCategoriesUseCase(categoryRepo)
	seedCategoriesUseCase := category.NewSeedCategoriesUseCase(categoryRepo)

	// Create card use cases
	listCardsUseCase := card.NewListCardsUseCase(cardRepo)
	createCardUseCase := card.NewCreateCardUseCase(cardRepo)
	updateCardUseCase := card.NewUpdateCardUseCase(cardRepo)
	archiveCardUseCase := card.NewArchiveCardUseCase(cardRepo)
	payCardUseCase := savings.NewPayCardUseCase(transactionRepo, cardRepo, settingsRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, settingsRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	aggregateGoalsUseCase := goal.NewAggregateGoalsUseCase(goalRepo, settingsRepo, transactionRepo)

	// Create asset, subscription and settings use cases
	assetUseCases := asset.NewAssetUseCases(assetRepo)
	netWorthUseCase := savings.NewGetNetWorthUseCase(settingsRepo, assetRepo, cardRepo)
	subscriptionUseCases := subscription.NewSubscriptionUseCases(subscriptionRepo)
	subscriptionSummaryUseCase := subscription.NewSummaryUseCase(subscriptionRepo)
	settingsUseCases := settings.NewSettingsUseCases(settingsRepo)

	// Create statement use cases
	extractStatementUseCase := statement.NewExtractStatementUseCase(
		extractor,
		categoryRepo,
		transactionRepo,
		cfg.Extractor.Timeout,
	)
	importStatementUseCase := statement.NewImportStatementUseCase(createTransactionUseCase)

	// Create dashboard and snapshot use cases
	monthSummaryUseCase := dashboard.NewMonthSummaryUseCase(transactionRepo, cardRepo)
	exportSnapshotUseCase := snapshot.NewExportSnapshotUseCase(
		transactionRepo, categoryRepo, cardRepo, goalRepo,
		assetRepo, subscriptionRepo, settingsRepo,
	)
	importSnapshotUseCase := snapshot.NewImportSnapshotUseCase(
		transactionRepo, categoryRepo, cardRepo, goalRepo,
		assetRepo, subscriptionRepo, settingsRepo,
		reconcileUseCase,
	)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, extractor.IsAvailable)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		listCategoriesUseCase,
		reorderCategoriesUseCase,
	)
	creditCardController := controller.NewCreditCardController(
		createCardUseCase,
		updateCardUseCase,
		archiveCardUseCase,
		listCardsUseCase,
		payCardUseCase,
	)
	goalController := controller.NewGoalController(
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		listGoalsUseCase,
		aggregateGoalsUseCase,
	)
	assetController := controller.NewAssetController(assetUseCases, netWorthUseCase)
	subscriptionController := controller.NewSubscriptionController(subscriptionUseCases, subscriptionSummaryUseCase)
	settingsController := controller.NewSettingsController(settingsUseCases)
	statementController := controller.NewStatementController(extractStatementUseCase, importStatementUseCase)
	dashboardController := controller.NewDashboardController(monthSummaryUseCase)
	snapshotController := controller.NewSnapshotController(exportSnapshotUseCase, importSnapshotUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var extractionRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		extractionRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		extractionRateLimiter = middleware.NewRateLimiter(redisClient)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		creditCardController,
		goalController,
		assetController,
		subscriptionController,
		settingsController,
		statementController,
		dashboardController,
		snapshotController,
		extractionRateLimiter,
	)

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         r,
		SeedCategories: seedCategoriesUseCase,
		Reconcile:      reconcileUseCase,
	}
}
