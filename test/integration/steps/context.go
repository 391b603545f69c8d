// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/backup"
	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/dashboard"
	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/expenditure"
	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/status"
	"github.com/0Hoxy/fixedExpenses/internal/infra/server/router"
	"github.com/0Hoxy/fixedExpenses/internal/integration/adapters"
	"github.com/0Hoxy/fixedExpenses/internal/integration/entrypoint/controller"
	"github.com/0Hoxy/fixedExpenses/internal/integration/entrypoint/middleware"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence"
	"github.com/0Hoxy/fixedExpenses/internal/integration/storage"
	"github.com/0Hoxy/fixedExpenses/test/integration/mock"
)

// testJWTSecret signs tokens for authenticated scenarios.
const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string
	authUserID  uuid.UUID

	// Database access for seeding
	db *gorm.DB

	// IDs created during the scenario, substituted into request paths
	// and bodies as {profileId}, {categoryId}, {expenditureId}, {jobId}.
	profileID     string
	categoryID    string
	expenditureID string
	jobID         string

	// Download captured by the backup scenarios for a later restore.
	downloadedArtifact []byte
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables request rate limiting so scenarios can hammer the
		// restore endpoint.
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		testDB := mock.NewDb()
		if err := testDB.Reset(); err != nil {
			return ctx, err
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			db:             testDB.DbConn,
		}
		tc.engine = buildEngine(testDB.DbConn)
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSeedSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerJobSteps(ctx)
}

// buildEngine wires the full application stack against the suite database,
// with an in-memory job registry and a temp-dir artifact store.
func buildEngine(db *gorm.DB) *gin.Engine {
	profileRepo := persistence.NewProfileRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	paymentMethodRepo := persistence.NewPaymentMethodRepository(db)
	expenditureRepo := persistence.NewExpenditureRepository(db)
	statusRepo := persistence.NewStatusHistoryRepository(db)
	paymentRepo := persistence.NewPaymentHistoryRepository(db)
	snapshotRepo := persistence.NewSnapshotRepository(db)

	artifactDir, err := os.MkdirTemp("", "artifacts")
	if err != nil {
		panic(err)
	}
	artifactStore, err := storage.NewLocalArtifactStore(artifactDir)
	if err != nil {
		panic(err)
	}

	backupRegistry := backup.NewInMemoryJobRegistry()
	restoreRegistry := backup.NewInMemoryJobRegistry()

	tokenService := adapters.NewTokenService(testJWTSecret)

	amountResolver := dashboard.NewAmountResolver(expenditureRepo, slog.Default())

	expenditureController := controller.NewExpenditureController(
		expenditure.NewCreateExpenditureUseCase(profileRepo, categoryRepo, paymentMethodRepo, expenditureRepo),
		expenditure.NewListExpendituresUseCase(profileRepo, expenditureRepo, statusRepo),
		expenditure.NewGetExpenditureUseCase(expenditureRepo, categoryRepo, statusRepo),
		expenditure.NewUpdateExpenditureUseCase(expenditureRepo, categoryRepo, paymentMethodRepo),
		expenditure.NewDeleteExpenditureUseCase(expenditureRepo),
		expenditure.NewMarkPaymentUseCase(expenditureRepo, paymentRepo),
		status.NewSetStatusUseCase(expenditureRepo, statusRepo),
		status.NewResolveStatusUseCase(statusRepo),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewGetDashboardUseCase(profileRepo, expenditureRepo, statusRepo, amountResolver),
		dashboard.NewGetMonthlyReportUseCase(profileRepo, expenditureRepo, statusRepo, amountResolver),
	)

	backupController := controller.NewBackupController(
		backup.NewStartBackupUseCase(snapshotRepo, artifactStore, backupRegistry),
		backup.NewStartRestoreUseCase(snapshotRepo, artifactStore, restoreRegistry),
		backup.NewGetJobUseCase(backupRegistry),
		backup.NewGetJobUseCase(restoreRegistry),
		backup.NewDownloadArtifactUseCase(artifactStore),
	)

	healthController := controller.NewHealthController(func() bool { return true })

	r := router.NewRouter(
		healthController,
		expenditureController,
		dashboardController,
		backupController,
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
	)
	return r.Setup("test")
}

// signTestToken issues a valid access token for the given user.
func signTestToken(userID uuid.UUID) (string, error) {
	claims := adapters.CustomClaims{
		UserID: userID.String(),
		Email:  "tester@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}
