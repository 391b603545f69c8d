package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I upload the downloaded artifact to "([^"]*)"$`, iUploadTheDownloadedArtifactTo)
	ctx.Step(`^I upload a file "([^"]*)" to "([^"]*)" with content:$`, iUploadAFileToWithContent)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// expandPlaceholders substitutes scenario-created IDs into request paths
// and bodies.
func (tc *TestContext) expandPlaceholders(s string) string {
	replacer := strings.NewReplacer(
		"{profileId}", tc.profileID,
		"{categoryId}", tc.categoryID,
		"{expenditureId}", tc.expenditureID,
		"{jobId}", tc.jobID,
	)
	return replacer.Replace(s)
}

func (tc *TestContext) send(req *http.Request) error {
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.captureIDs()
	return nil
}

// captureIDs remembers IDs from successful responses so later steps can
// reference them through placeholders.
func (tc *TestContext) captureIDs() {
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(tc.responseBody, &envelope); err != nil {
		return
	}
	if id, ok := envelope.Data["id"].(string); ok {
		tc.expenditureID = id
	}
	if id, ok := envelope.Data["jobId"].(string); ok {
		tc.jobID = id
	}
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iAmAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	token, err := signTestToken(tc.userID())
	if err != nil {
		return ctx, fmt.Errorf("failed to sign test token: %w", err)
	}
	tc.accessToken = token
	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	url := tc.server.URL + tc.expandPlaceholders(endpoint)
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if err := tc.send(req); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	url := tc.server.URL + tc.expandPlaceholders(endpoint)
	content := tc.expandPlaceholders(body.Content)
	req, err := http.NewRequest(method, url, bytes.NewBufferString(content))
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := tc.send(req); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iUploadTheDownloadedArtifactTo(ctx context.Context, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if len(tc.downloadedArtifact) == 0 {
		return ctx, fmt.Errorf("no artifact has been downloaded in this scenario")
	}
	return uploadBackupFile(ctx, tc, endpoint, "backup.json", tc.downloadedArtifact)
}

func iUploadAFileToWithContent(ctx context.Context, filename, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return uploadBackupFile(ctx, tc, endpoint, filename, []byte(tc.expandPlaceholders(body.Content)))
}

func uploadBackupFile(ctx context.Context, tc *TestContext, endpoint, filename string, content []byte) (context.Context, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("backupFile", filename)
	if err != nil {
		return ctx, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return ctx, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return ctx, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	url := tc.server.URL + tc.expandPlaceholders(endpoint)
	req, err := http.NewRequest(http.MethodPost, url, &buf)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := tc.send(req); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	expected = tc.expandPlaceholders(expected)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	expected = tc.expandPlaceholders(expected)
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'. Body: %s", field, expected, actual, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if _, err := tc.lookupField(field); err != nil {
		return err
	}
	return nil
}

// lookupField walks a dotted path like "data.monthTotal" through the
// response JSON.
func (tc *TestContext) lookupField(path string) (interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	parts := strings.Split(path, ".")
	var current interface{} = data
	for _, part := range parts {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("field '%s' is not an object in path '%s'", part, path)
		}
		current, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field '%s' not found in response. Body: %s", path, string(tc.responseBody))
		}
	}
	return current, nil
}
