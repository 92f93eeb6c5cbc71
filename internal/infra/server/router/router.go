// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                     *gin.Engine
	healthController           *controller.HealthController
	expenseController          *controller.ExpenseController
	insightController          *controller.InsightController
	recurringExpenseController *controller.RecurringExpenseController
	userController             *controller.UserController
	exportRateLimiter          *middleware.RateLimiter
	authMiddleware             *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	insightController *controller.InsightController,
	recurringExpenseController *controller.RecurringExpenseController,
	userController *controller.UserController,
	exportRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:           healthController,
		expenseController:          expenseController,
		insightController:          insightController,
		recurringExpenseController: recurringExpenseController,
		userController:             userController,
		exportRateLimiter:          exportRateLimiter,
		authMiddleware:             authMiddleware,
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
// Every route under /api/v1 requires a bearer token.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		expenses := v1.Group("/expenses")
		{
			expenses.POST("", r.expenseController.Create)
			expenses.GET("", r.expenseController.List)
			expenses.GET("/monthly", r.expenseController.Monthly)
			expenses.GET("/insight", r.insightController.Insight)
		}

		insights := v1.Group("/insights")
		{
			insights.GET("/monthly-trends", r.insightController.MonthlyTrends)
			if r.exportRateLimiter != nil {
				insights.GET("/monthly-trends/export", r.exportRateLimiter.Middleware(), r.insightController.ExportMonthlyTrends)
			} else {
				insights.GET("/monthly-trends/export", r.insightController.ExportMonthlyTrends)
			}
		}

		recurringExpenses := v1.Group("/recurring-expenses")
		{
			recurringExpenses.POST("", r.recurringExpenseController.Create)
			recurringExpenses.GET("", r.recurringExpenseController.List)
			recurringExpenses.DELETE("/:id", r.recurringExpenseController.Delete)
		}

		user := v1.Group("/user")
		{
			user.PUT("/budget", r.userController.UpdateBudget)
		}
	}
}
