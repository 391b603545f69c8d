// Package main is the entry point for the Fixed Expenses API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/0Hoxy/fixedExpenses/config"
	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/backup"
	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/dashboard"
	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/expenditure"
	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/status"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	"github.com/0Hoxy/fixedExpenses/internal/infra/db"
	"github.com/0Hoxy/fixedExpenses/internal/infra/server/router"
	"github.com/0Hoxy/fixedExpenses/internal/integration/adapters"
	"github.com/0Hoxy/fixedExpenses/internal/integration/email"
	"github.com/0Hoxy/fixedExpenses/internal/integration/entrypoint/controller"
	"github.com/0Hoxy/fixedExpenses/internal/integration/entrypoint/middleware"
	"github.com/0Hoxy/fixedExpenses/internal/integration/jobs"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence/model"
	"github.com/0Hoxy/fixedExpenses/internal/integration/storage"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Fixed Expenses API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Postgres
	var dbHealthChecker func() bool

	database, err := db.Open(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.Migrate(
			&model.ProfileModel{},
			&model.CategoryModel{},
			&model.PaymentMethodModel{},
			&model.ExpenditureModel{},
			&model.RegularDetailModel{},
			&model.SubscriptionDetailModel{},
			&model.InstallmentDetailModel{},
			&model.PaymentHistoryModel{},
			&model.StatusHistoryModel{},
			&model.PhotoModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.Healthy
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var expenditureController *controller.ExpenditureController
	var dashboardController *controller.DashboardController
	var backupController *controller.BackupController
	var restoreRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	var reminderWorker *email.Worker

	if database != nil {
		// Create repositories
		profileRepo := persistence.NewProfileRepository(database.Gorm())
		categoryRepo := persistence.NewCategoryRepository(database.Gorm())
		paymentMethodRepo := persistence.NewPaymentMethodRepository(database.Gorm())
		expenditureRepo := persistence.NewExpenditureRepository(database.Gorm())
		statusRepo := persistence.NewStatusHistoryRepository(database.Gorm())
		paymentRepo := persistence.NewPaymentHistoryRepository(database.Gorm())
		snapshotRepo := persistence.NewSnapshotRepository(database.Gorm())

		// Create job registries. Backup and restore jobs live in separate
		// namespaces so their IDs never collide.
		var backupRegistry, restoreRegistry backup.JobRegistry
		if cfg.Redis.Enabled {
			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			backupRegistry = jobs.NewRedisJobRegistry(redisClient, entity.JobKindBackup)
			restoreRegistry = jobs.NewRedisJobRegistry(redisClient, entity.JobKindRestore)
			slog.Info("Using Redis job registry", "addr", cfg.Redis.Addr)
		} else {
			backupRegistry = backup.NewInMemoryJobRegistry()
			restoreRegistry = backup.NewInMemoryJobRegistry()
		}

		// Create artifact store
		var artifactStore adapter.ArtifactStore
		if cfg.Storage.Backend == "s3" {
			artifactStore = storage.NewS3ArtifactStore(storage.S3Config{
				Endpoint:  cfg.Storage.Endpoint,
				Region:    cfg.Storage.Region,
				Bucket:    cfg.Storage.Bucket,
				AccessKey: cfg.Storage.AccessKey,
				SecretKey: cfg.Storage.SecretKey,
				KeyPrefix: cfg.Storage.KeyPrefix,
			})
			slog.Info("Using S3 artifact store", "bucket", cfg.Storage.Bucket)
		} else {
			localStore, err := storage.NewLocalArtifactStore(cfg.Storage.LocalDir)
			if err != nil {
				slog.Error("Failed to initialize local artifact store", "error", err)
				os.Exit(1)
			}
			artifactStore = localStore
		}

		// Create adapters/services
		tokenService := adapters.NewTokenService(cfg.JWT.Secret)

		// Create expenditure use cases
		createUseCase := expenditure.NewCreateExpenditureUseCase(profileRepo, categoryRepo, paymentMethodRepo, expenditureRepo)
		listUseCase := expenditure.NewListExpendituresUseCase(profileRepo, expenditureRepo, statusRepo)
		getUseCase := expenditure.NewGetExpenditureUseCase(expenditureRepo, categoryRepo, statusRepo)
		updateUseCase := expenditure.NewUpdateExpenditureUseCase(expenditureRepo, categoryRepo, paymentMethodRepo)
		deleteUseCase := expenditure.NewDeleteExpenditureUseCase(expenditureRepo)
		markPaymentUseCase := expenditure.NewMarkPaymentUseCase(expenditureRepo, paymentRepo)

		// Create status use cases
		setStatusUseCase := status.NewSetStatusUseCase(expenditureRepo, statusRepo)
		resolveStatusUseCase := status.NewResolveStatusUseCase(statusRepo)

		// Create dashboard use cases
		amountResolver := dashboard.NewAmountResolver(expenditureRepo, logger)
		dashboardUseCase := dashboard.NewGetDashboardUseCase(profileRepo, expenditureRepo, statusRepo, amountResolver)
		reportUseCase := dashboard.NewGetMonthlyReportUseCase(profileRepo, expenditureRepo, statusRepo, amountResolver)

		// Create backup use cases
		startBackupUseCase := backup.NewStartBackupUseCase(snapshotRepo, artifactStore, backupRegistry)
		startRestoreUseCase := backup.NewStartRestoreUseCase(snapshotRepo, artifactStore, restoreRegistry)
		backupJobUseCase := backup.NewGetJobUseCase(backupRegistry)
		restoreJobUseCase := backup.NewGetJobUseCase(restoreRegistry)
		downloadUseCase := backup.NewDownloadArtifactUseCase(artifactStore)

		// Create controllers
		expenditureController = controller.NewExpenditureController(
			createUseCase,
			listUseCase,
			getUseCase,
			updateUseCase,
			deleteUseCase,
			markPaymentUseCase,
			setStatusUseCase,
			resolveStatusUseCase,
		)

		dashboardController = controller.NewDashboardController(
			dashboardUseCase,
			reportUseCase,
		)

		backupController = controller.NewBackupController(
			startBackupUseCase,
			startRestoreUseCase,
			backupJobUseCase,
			restoreJobUseCase,
			downloadUseCase,
		)

		// Create middleware
		restoreRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		// Create payment reminder worker
		if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			reminderWorker = email.NewWorker(expenditureRepo, sender, email.WorkerConfig{
				Recipient:    cfg.Email.Recipient,
				PollInterval: cfg.Email.PollInterval,
			})
		}

		slog.Info("Expenditure, dashboard and backup systems initialized successfully")
	} else {
		slog.Warn("API not fully initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		expenditureController,
		dashboardController,
		backupController,
		restoreRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start the reminder worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if reminderWorker != nil {
		go reminderWorker.Start(workerCtx)
		slog.Info("Payment reminder worker started", "poll_interval", cfg.Email.PollInterval.String())
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
