// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/insight"
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	"github.com/expense-tracker/backend/internal/application/usecase/user"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/events"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/scheduler"
)

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	Router            *router.Router
	Scheduler         *scheduler.Worker // nil when the daily job is disabled
	ExportRateLimiter *middleware.RateLimiter
}

// Options carries the optional infrastructure the injector wires when present.
type Options struct {
	Redis     *redis.Client
	Publisher *events.Publisher
	// HealthCheck overrides the default database ping.
	HealthCheck func() bool
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(db)
	recurringRepo := persistence.NewRecurringExpenseRepository(db)
	subCategoryRepo := persistence.NewSubCategoryRepository(db)
	paymentTypeRepo := persistence.NewPaymentTypeRepository(db)
	userRepo := persistence.NewUserRepository(db)

	// Optional collaborators stay untyped nil so use cases can skip them
	var trendCache adapter.TrendCache
	if opts.Redis != nil {
		trendCache = cache.NewTrendCache(opts.Redis, cfg.Insight.TrendCacheTTL)
	}
	var publisher adapter.ExpenseEventPublisher
	if opts.Publisher != nil {
		publisher = opts.Publisher
	}

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, subCategoryRepo, paymentTypeRepo, trendCache, publisher)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getMonthlyExpenseUseCase := expense.NewGetMonthlyExpenseUseCase(expenseRepo)

	// Create insight use cases
	getMonthlyInsightUseCase := insight.NewGetMonthlyInsightUseCase(expenseRepo, userRepo)
	getMonthlyTrendsUseCase := insight.NewGetMonthlyTrendsUseCase(expenseRepo, trendCache, cfg.Insight.TrendWindowMonths)

	// Create recurring use cases
	createRecurringUseCase := recurring.NewCreateRecurringExpenseUseCase(recurringRepo, subCategoryRepo, paymentTypeRepo)
	listRecurringUseCase := recurring.NewListRecurringExpensesUseCase(recurringRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringExpenseUseCase(recurringRepo)
	createTodayExpensesUseCase := recurring.NewCreateTodayExpensesUseCase(expenseRepo, recurringRepo, trendCache, publisher)

	// Create user use cases
	updateBudgetUseCase := user.NewUpdateBudgetUseCase(userRepo)

	// Create controllers
	healthChecks := controller.HealthChecks{Database: opts.HealthCheck}
	if healthChecks.Database == nil {
		healthChecks.Database = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}
	if opts.Redis != nil {
		healthChecks.TrendCache = func(ctx context.Context) bool {
			return opts.Redis.Ping(ctx).Err() == nil
		}
	}
	if opts.Publisher != nil {
		healthChecks.Events = opts.Publisher.Healthy
	}
	healthController := controller.NewHealthController(healthChecks)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		getMonthlyExpenseUseCase,
	)

	insightController := controller.NewInsightController(
		getMonthlyInsightUseCase,
		getMonthlyTrendsUseCase,
	)

	recurringExpenseController := controller.NewRecurringExpenseController(
		createRecurringUseCase,
		listRecurringUseCase,
		deleteRecurringUseCase,
	)

	userController := controller.NewUserController(updateBudgetUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var exportRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		exportRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		exportRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create scheduler
	var worker *scheduler.Worker
	if cfg.Scheduler.Enabled {
		var err error
		worker, err = scheduler.NewWorker(createTodayExpensesUseCase, scheduler.WorkerConfig{
			Hour:     cfg.Scheduler.RunHour,
			Minute:   cfg.Scheduler.RunMin,
			Timezone: cfg.Scheduler.Timezone,
		})
		if err != nil {
			return nil, err
		}
	} else {
		slog.Info("Recurring expense scheduler disabled")
	}

	// Create router
	r := router.NewRouter(
		healthController,
		expenseController,
		insightController,
		recurringExpenseController,
		userController,
		exportRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Router:            r,
		Scheduler:         worker,
		ExportRateLimiter: exportRateLimiter,
	}, nil
}
