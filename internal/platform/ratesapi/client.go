// Package ratesapi implements the upstream exchange-rate API client against a
// free "latest rates relative to base" endpoint.
package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openaims/fxconvert/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Client fetches rates over HTTP. It implements ports.RatesAPIClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a rate API client with a fixed per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

var _ ports.RatesAPIClient = (*Client)(nil)

// latestResponse is the JSON response shape of the latest-rates endpoint.
// Rates are decoded as json.Number to avoid float round-tripping.
type latestResponse struct {
	Rates map[string]json.Number `json:"rates"`
}

// LatestRates fetches the latest rates relative to baseCurrency.
// Transport-level failures, 5xx statuses and 429 are returned as plain errors
// (callers may retry them); malformed responses and other client-error
// statuses are wrapped in ports.ErrBadAPIResponse and are terminal.
func (c *Client) LatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	reqURL := fmt.Sprintf("%s/latest/%s", c.baseURL, baseCurrency)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate API request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Server errors and rate limiting are transient; callers retry them.
		// Other client errors mean the request itself is wrong and retrying
		// cannot help.
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("rate API returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: status %d", ports.ErrBadAPIResponse, resp.StatusCode)
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrBadAPIResponse, err)
	}
	if len(parsed.Rates) == 0 {
		return nil, fmt.Errorf("%w: missing rates field", ports.ErrBadAPIResponse)
	}

	rates := make(map[string]decimal.Decimal, len(parsed.Rates))
	for code, raw := range parsed.Rates {
		rate, err := decimal.NewFromString(raw.String())
		if err != nil {
			return nil, fmt.Errorf("%w: invalid rate for %s: %v", ports.ErrBadAPIResponse, code, err)
		}
		rates[code] = rate
	}
	return rates, nil
}
