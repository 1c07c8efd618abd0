// Package ledger implements the HTTP client for the upstream budgeting
// service. It moves bytes and nothing else: response bodies are returned as
// raw JSON for the schema layer to judge, and failures of the call itself
// all wrap domain.ErrLedgerUnavailable. No retries, no partial results.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finvola/budget-gateway/internal/domain"
)

const apiKeyHeader = "X-Api-Key"

// Client talks to one budget file (sync id) on one upstream instance.
type Client struct {
	baseURL    string
	apiKey     string
	syncID     string
	httpClient *http.Client
}

var _ domain.LedgerGateway = (*Client)(nil)

// NewClient creates a Client for the given upstream base URL and budget
// sync id.
func NewClient(baseURL, apiKey, syncID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		syncID:     syncID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Accounts fetches the raw account list.
func (c *Client) Accounts(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/v1/budgets/%s/accounts", c.syncID))
}

// BudgetMonth fetches the raw budget month aggregate for a YYYY-MM month.
func (c *Client) BudgetMonth(ctx context.Context, month string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/v1/budgets/%s/months/%s", c.syncID, month))
}

// Categories fetches the raw grouped category list.
func (c *Client) Categories(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/v1/budgets/%s/categories/grouped", c.syncID))
}

// CreateTransaction submits a new transaction to the upstream ledger.
func (c *Client) CreateTransaction(ctx context.Context, tx domain.NewTransaction) error {
	body, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}

	path := fmt.Sprintf("/v1/budgets/%s/transactions", c.syncID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrLedgerUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: POST %s: %v", domain.ErrLedgerUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: POST %s returned %d", domain.ErrLedgerUnavailable, path, resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrLedgerUnavailable, err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", domain.ErrLedgerUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %d", domain.ErrLedgerUnavailable, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: read body: %v", domain.ErrLedgerUnavailable, path, err)
	}
	return json.RawMessage(body), nil
}
