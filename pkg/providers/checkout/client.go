package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Checkout is the provider's authoritative record of a checkout, returned
// by the lookup call.
type Checkout struct {
	CheckoutID       string           `json:"checkout_id"`
	Gross            *json.Number     `json:"gross,omitempty"`
	Fee              json.Number      `json:"fee"`
	State            string           `json:"state"`
	PayerName        string           `json:"payer_name"`
	PayerEmail       string           `json:"payer_email"`
	ShippingAddress  *ShippingAddress `json:"shipping_address,omitempty"`
	Error            string           `json:"error,omitempty"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

// ShippingAddress carries both region-naming variants the provider uses:
// US addresses come with state/zip, others with region/postcode.
type ShippingAddress struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Region   string `json:"region,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Client looks up a checkout against the provider's API.
type Client interface {
	// GetCheckout fetches the authoritative state of a checkout.
	GetCheckout(ctx context.Context, checkoutID string) (*Checkout, error)
}

// HTTPClient implements Client against the provider's HTTP API.
type HTTPClient struct {
	BaseURL     string
	AccessToken string
	Client      *http.Client
}

// NewHTTPClient creates a checkout API client with a request timeout, so a
// slow provider cannot hang event processing.
func NewHTTPClient(baseURL, accessToken string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL:     baseURL,
		AccessToken: accessToken,
		Client:      &http.Client{Timeout: timeout},
	}
}

var _ Client = (*HTTPClient)(nil)

// GetCheckout fetches the authoritative state of a checkout.
func (c *HTTPClient) GetCheckout(ctx context.Context, checkoutID string) (*Checkout, error) {
	body, err := json.Marshal(map[string]string{"checkout_id": checkoutID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkout lookup: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/checkout", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build checkout lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("checkout lookup returned status %d", resp.StatusCode)
	}

	var details Checkout
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("failed to decode checkout lookup response: %w", err)
	}

	return &details, nil
}
