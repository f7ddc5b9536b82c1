package card

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BalanceTransaction is the processor's record of the money movement
// behind a charge. Amounts are integer minor units.
type BalanceTransaction struct {
	ID  string `json:"id"`
	Net int64  `json:"net"`
	Fee int64  `json:"fee"`
}

// Client looks up balance transactions against the card processor's API.
type Client interface {
	// GetBalanceTransaction fetches the balance transaction behind a charge.
	GetBalanceTransaction(ctx context.Context, id string) (*BalanceTransaction, error)
}

// HTTPClient implements Client against the processor's HTTP API.
type HTTPClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHTTPClient creates a card API client with a request timeout.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: timeout},
	}
}

var _ Client = (*HTTPClient)(nil)

// GetBalanceTransaction fetches the balance transaction behind a charge.
func (c *HTTPClient) GetBalanceTransaction(ctx context.Context, id string) (*BalanceTransaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/balance_transactions/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build balance transaction request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("balance transaction lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("balance transaction lookup returned status %d", resp.StatusCode)
	}

	var bt BalanceTransaction
	if err := json.NewDecoder(resp.Body).Decode(&bt); err != nil {
		return nil, fmt.Errorf("failed to decode balance transaction: %w", err)
	}

	return &bt, nil
}
