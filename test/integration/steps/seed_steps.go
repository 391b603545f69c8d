package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	"github.com/0Hoxy/fixedExpenses/internal/domain/valueobject"
	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence"
)

// registerSeedSteps registers database seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a profile exists$`, aProfileExists)
	ctx.Step(`^a category "([^"]*)" exists$`, aCategoryExists)
	ctx.Step(`^a regular expenditure "([^"]*)" costing (\d+) exists since "([^"]*)"$`, aRegularExpenditureExists)
}

// registerJobSteps registers backup job polling steps.
func registerJobSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I wait for the backup job to finish with status "([^"]*)"$`, iWaitForTheBackupJob)
	ctx.Step(`^I wait for the restore job to finish with status "([^"]*)"$`, iWaitForTheRestoreJob)
	ctx.Step(`^I download the backup artifact$`, iDownloadTheBackupArtifact)
}

func aProfileExists(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	profile := entity.NewProfile(tc.userID(), "tester", "KRW")
	repo := persistence.NewProfileRepository(tc.db)
	if err := repo.Create(ctx, profile); err != nil {
		return ctx, fmt.Errorf("failed to seed profile: %w", err)
	}

	tc.profileID = profile.ID.String()
	return SetTestContext(ctx, tc), nil
}

func aCategoryExists(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.profileID == "" {
		return ctx, fmt.Errorf("a profile must be seeded before a category")
	}

	profileID, err := uuid.Parse(tc.profileID)
	if err != nil {
		return ctx, err
	}

	category := entity.NewCategory(profileID, name, "💳", "#4A90D9", false)
	repo := persistence.NewCategoryRepository(tc.db)
	if err := repo.Create(ctx, category); err != nil {
		return ctx, fmt.Errorf("failed to seed category: %w", err)
	}

	tc.categoryID = category.ID.String()
	return SetTestContext(ctx, tc), nil
}

func aRegularExpenditureExists(ctx context.Context, itemName string, amount int, sinceMonth string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.profileID == "" || tc.categoryID == "" {
		return ctx, fmt.Errorf("a profile and category must be seeded first")
	}

	profileID, err := uuid.Parse(tc.profileID)
	if err != nil {
		return ctx, err
	}
	categoryID, err := uuid.Parse(tc.categoryID)
	if err != nil {
		return ctx, err
	}
	month, err := valueobject.ParseMonth(sinceMonth)
	if err != nil {
		return ctx, err
	}

	exp := entity.NewExpenditure(profileID, categoryID, nil, itemName, 15, "MONTHLY", entity.ExpenditureTypeRegular, "")
	detail := &entity.RegularDetail{
		ExpenditureID: exp.ID,
		Amount:        decimal.NewFromInt(int64(amount)),
	}
	initialStatus := &entity.StatusEntry{
		ExpenditureID:  exp.ID,
		Status:         entity.StatusActive,
		EffectiveMonth: month.Time(),
	}

	repo := persistence.NewExpenditureRepository(tc.db)
	if err := repo.Create(ctx, exp, detail, initialStatus); err != nil {
		return ctx, fmt.Errorf("failed to seed expenditure: %w", err)
	}

	tc.expenditureID = exp.ID.String()
	return SetTestContext(ctx, tc), nil
}

// userID returns the scenario's authenticated user, creating it on first use.
func (tc *TestContext) userID() uuid.UUID {
	if tc.authUserID == uuid.Nil {
		tc.authUserID = uuid.New()
	}
	return tc.authUserID
}

func iWaitForTheBackupJob(ctx context.Context, wantStatus string) (context.Context, error) {
	return waitForJob(ctx, "/api/v1/backups/", wantStatus)
}

func iWaitForTheRestoreJob(ctx context.Context, wantStatus string) (context.Context, error) {
	return waitForJob(ctx, "/api/v1/restores/", wantStatus)
}

// waitForJob polls the job endpoint until the job reaches a terminal status.
func waitForJob(ctx context.Context, basePath, wantStatus string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.jobID == "" {
		return ctx, fmt.Errorf("no job has been started in this scenario")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		req, err := http.NewRequest(http.MethodGet, tc.server.URL+basePath+tc.jobID, nil)
		if err != nil {
			return ctx, err
		}
		if err := tc.send(req); err != nil {
			return ctx, err
		}

		status, err := tc.lookupField("data.status")
		if err != nil {
			return ctx, err
		}
		if s, ok := status.(string); ok && (s == "completed" || s == "failed") {
			if s != wantStatus {
				return ctx, fmt.Errorf("job finished with status %q, want %q. Body: %s", s, wantStatus, string(tc.responseBody))
			}
			return SetTestContext(ctx, tc), nil
		}

		if time.Now().After(deadline) {
			return ctx, fmt.Errorf("job did not finish in time. Body: %s", string(tc.responseBody))
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func iDownloadTheBackupArtifact(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	downloadURL, err := tc.lookupField("data.downloadUrl")
	if err != nil {
		return ctx, err
	}
	path, ok := downloadURL.(string)
	if !ok || path == "" {
		return ctx, fmt.Errorf("job response has no download URL. Body: %s", string(tc.responseBody))
	}

	req, err := http.NewRequest(http.MethodGet, tc.server.URL+path, nil)
	if err != nil {
		return ctx, err
	}
	if err := tc.send(req); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("download failed with status %d", tc.response.StatusCode)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return ctx, fmt.Errorf("downloaded artifact is not valid JSON: %w", err)
	}

	tc.downloadedArtifact = append([]byte(nil), tc.responseBody...)
	return SetTestContext(ctx, tc), nil
}
