package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.paystack.co"

// Client talks to the Paystack transaction API. Only the two calls the
// subscription flow needs are implemented: initialize and verify.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func New(secretKey string) *Client {
	return NewWithBaseURL(secretKey, defaultBaseURL)
}

// NewWithBaseURL exists so tests can point the client at a local server.
func NewWithBaseURL(secretKey, baseURL string) *Client {
	return &Client{
		secretKey:  secretKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Authorization is the handshake returned by transaction/initialize; the
// client opens AuthorizationURL (or the inline widget via AccessCode) and
// later asks us to verify Reference.
type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Transaction is the verified state of a charge. Amount is in minor units.
type Transaction struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at"`
	Customer  struct {
		Email string `json:"email"`
	} `json:"customer"`
}

// Succeeded reports whether the charge actually captured. Anything else
// (abandoned, failed, pending) must not produce a receipt.
func (t *Transaction) Succeeded() bool {
	return t.Status == "success"
}

// PaidTime parses the transaction's paid_at timestamp.
func (t *Transaction) PaidTime() time.Time {
	return ParsePaidAt(t.PaidAt)
}

// ParsePaidAt parses Paystack's paid_at timestamp, falling back to now when
// the field is missing or malformed.
func ParsePaidAt(s string) time.Time {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts
	}
	return time.Now()
}

// envelope is the wrapper every Paystack response uses.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize starts a transaction for email over amountMinor minor units.
func (c *Client) Initialize(ctx context.Context, email string, amountMinor int64, currency string) (*Authorization, error) {
	body, err := json.Marshal(map[string]interface{}{
		"email":    email,
		"amount":   amountMinor,
		"currency": currency,
	})
	if err != nil {
		return nil, err
	}

	var auth Authorization
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body), &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Verify fetches the settled state of a transaction by reference.
func (c *Client) Verify(ctx context.Context, reference string) (*Transaction, error) {
	var tx Transaction
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) do(ctx context.Context, method, path string, body *bytes.Reader, out interface{}) error {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("paystack response malformed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Status {
		return fmt.Errorf("paystack error: %s", env.Message)
	}
	return json.Unmarshal(env.Data, out)
}
