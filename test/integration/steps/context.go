//go:build integration

// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/config"
	"github.com/pocketledger/backend/internal/infra/dependency"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
	"github.com/pocketledger/backend/test/integration/mock"
)

// testContext carries per-scenario state: the running server, the last
// response, and the ids captured from earlier requests.
type testContext struct {
	server   *httptest.Server
	client   *http.Client
	db       *mock.Db
	headers  map[string]string
	response *response

	cardID        string
	transactionID string
	goalID        string
}

type response struct {
	status int
	body   any
	raw    []byte
}

// InitializeTestSuite configures the process for the suite.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario wires the step definitions and a fresh server per
// scenario over the shared in-memory database.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb([]any{
			&model.TransactionModel{},
			&model.CategoryModel{},
			&model.CreditCardModel{},
			&model.GoalModel{},
			&model.AssetModel{},
			&model.SubscriptionModel{},
			&model.SettingsModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.before(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^a credit card exists with name "([^"]*)" and limit "([^"]*)"$`, test.aCreditCardExistsWithNameAndLimit)
	ctx.Given(`^the monthly income is "([^"]*)" and total savings is "([^"]*)"$`, test.theMonthlyIncomeAndTotalSavingsAre)
	ctx.Given(`^a transaction exists:$`, test.aTransactionExists)

	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the db should contain (\d+) rows in the "([^"]*)" table$`, test.theDbShouldContainRowsInTheTable)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.cardID = ""
	t.transactionID = ""
	t.goalID = ""

	if err := t.db.Clear(); err != nil {
		return err
	}

	cfg := config.Load()
	injector := dependency.NewInjector(cfg, t.db.DbConn, func() bool { return true })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := injector.SeedCategories.Execute(ctx); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	t.server = httptest.NewServer(injector.Router.Setup("test"))
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) aCreditCardExistsWithNameAndLimit(name, limit string) error {
	limitValue, err := strconv.ParseFloat(limit, 64)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", limit, err)
	}
	body, err := json.Marshal(map[string]any{"name": name, "limit": limitValue})
	if err != nil {
		return err
	}
	if err := t.executeRequest(http.MethodPost, "/api/v1/cards", body); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("failed to create card, status %d: %s", t.response.status, t.response.raw)
	}
	t.cardID = t.capturedID()
	return nil
}

func (t *testContext) theMonthlyIncomeAndTotalSavingsAre(income, savings string) error {
	incomeValue, err := strconv.ParseFloat(income, 64)
	if err != nil {
		return fmt.Errorf("invalid income %q: %w", income, err)
	}
	savingsValue, err := strconv.ParseFloat(savings, 64)
	if err != nil {
		return fmt.Errorf("invalid savings %q: %w", savings, err)
	}
	body, err := json.Marshal(map[string]any{
		"monthly_income": incomeValue,
		"total_savings":  savingsValue,
	})
	if err != nil {
		return err
	}
	if err := t.executeRequest(http.MethodPatch, "/api/v1/settings", body); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("failed to update settings, status %d: %s", t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) aTransactionExists(body *godog.DocString) error {
	payload := []byte(t.replacePlaceholders(body.Content))
	if err := t.executeRequest(http.MethodPost, "/api/v1/transactions", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("failed to create transaction, status %d: %s", t.response.status, t.response.raw)
	}
	t.transactionID = t.capturedID()
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	payload := []byte(t.replacePlaceholders(body.Content))
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{card_id}}", t.cardID)
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.transactionID)
	content = strings.ReplaceAll(content, "{{goal_id}}", t.goalID)
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.server.URL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err == nil {
		t.response.body = parsed
	} else {
		t.response.body = string(raw)
	}

	// Goal responses carry an id too; remember it for follow-up requests.
	if strings.Contains(path, "/goals") && resp.StatusCode == http.StatusCreated {
		t.goalID = t.capturedID()
	}
	return nil
}

func (t *testContext) capturedID() string {
	if body, ok := t.response.body.(map[string]any); ok {
		if id, ok := body["id"].(string); ok {
			return id
		}
	}
	return ""
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value := t.getField(field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %s", field, t.response.raw)
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.getField(field) == nil {
		return fmt.Errorf("field %q not found in response: %s", field, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, t.response.raw)
	}
	return nil
}

func (t *testContext) theDbShouldContainRowsInTheTable(expected int, table string) error {
	count, err := t.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %q, got %d", expected, table, count)
	}
	return nil
}

// getField resolves a dot path into the response body; numeric segments
// index into arrays ("cards.0.balance").
func (t *testContext) getField(path string) any {
	if t.response == nil {
		return nil
	}
	var current any = t.response.body
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[segment]
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil
			}
			current = node[index]
		default:
			return nil
		}
	}
	return current
}
