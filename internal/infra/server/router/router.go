// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/0Hoxy/fixedExpenses/internal/integration/entrypoint/controller"
	"github.com/0Hoxy/fixedExpenses/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	expenditureController *controller.ExpenditureController
	dashboardController   *controller.DashboardController
	backupController      *controller.BackupController
	restoreRateLimiter    *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenditureController *controller.ExpenditureController,
	dashboardController *controller.DashboardController,
	backupController *controller.BackupController,
	restoreRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		expenditureController: expenditureController,
		dashboardController:   dashboardController,
		backupController:      backupController,
		restoreRateLimiter:    restoreRateLimiter,
		authMiddleware:        authMiddleware,
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

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Expenditure routes (require authentication)
		if r.expenditureController != nil && r.authMiddleware != nil {
			expenditures := v1.Group("/expenditures")
			expenditures.Use(r.authMiddleware.Authenticate())
			{
				expenditures.POST("", r.expenditureController.Create)
				expenditures.GET("", r.expenditureController.List)
				expenditures.GET("/:id", r.expenditureController.Get)
				expenditures.PATCH("/:id", r.expenditureController.Update)
				expenditures.DELETE("/:id", r.expenditureController.Delete)
				expenditures.PUT("/:id/payments/:month", r.expenditureController.MarkPayment)
				expenditures.PUT("/:id/statuses/:effectiveMonth", r.expenditureController.SetStatus)
				expenditures.GET("/:id/statuses/:month", r.expenditureController.GetStatus)
			}
		}

		// Profile-scoped aggregation routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			profiles := v1.Group("/profiles")
			profiles.Use(r.authMiddleware.Authenticate())
			{
				profiles.GET("/:profileId/dashboard", r.dashboardController.GetDashboard)
				profiles.GET("/:profileId/reports/monthly", r.dashboardController.GetMonthlyReport)
			}
		}

		// Backup and restore routes (require authentication)
		if r.backupController != nil && r.authMiddleware != nil {
			backups := v1.Group("/backups")
			backups.Use(r.authMiddleware.Authenticate())
			{
				backups.POST("", r.backupController.StartBackup)
				backups.GET("/:jobId", r.backupController.GetBackupJob)
			}

			restores := v1.Group("/restores")
			restores.Use(r.authMiddleware.Authenticate())
			{
				if r.restoreRateLimiter != nil {
					restores.POST("", r.restoreRateLimiter.Middleware(), r.backupController.StartRestore)
				} else {
					restores.POST("", r.backupController.StartRestore)
				}
				restores.GET("/:jobId", r.backupController.GetRestoreJob)
			}

			downloads := v1.Group("/downloads")
			downloads.Use(r.authMiddleware.Authenticate())
			{
				downloads.GET("/:filename", r.backupController.Download)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
