package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Lutefd/currency-widget/internal/model"
)

const DefaultBaseURL = "https://v6.exchangerate-api.com"

type ExchangeRateAPIClient struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	client  *http.Client
}

type Option func(*ExchangeRateAPIClient)

func WithBaseURL(baseURL string) Option {
	return func(c *ExchangeRateAPIClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout bounds the whole request. Zero keeps the default of no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *ExchangeRateAPIClient) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the transport client. A nil client is ignored and
// the caller's client is never modified.
func WithHTTPClient(client *http.Client) Option {
	return func(c *ExchangeRateAPIClient) {
		if client != nil {
			c.client = client
		}
	}
}

func NewExchangeRateAPIClient(apiKey string, opts ...Option) *ExchangeRateAPIClient {
	c := &ExchangeRateAPIClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		client := *c.client
		client.Timeout = c.timeout
		c.client = &client
	}
	return c
}

func (c *ExchangeRateAPIClient) FetchRates(ctx context.Context, base model.Currency) (model.ExchangeRateTable, error) {
	url := fmt.Sprintf("%s/v6/%s/latest/%s", c.baseURL, c.apiKey, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", model.ErrRateFetch, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", model.ErrRateFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API request failed with status code: %d", model.ErrRateFetch, resp.StatusCode)
	}

	var payload model.LatestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", model.ErrRateFetch, err)
	}

	if payload.Result == "error" {
		return nil, fmt.Errorf("%w: provider returned error: %s", model.ErrRateFetch, payload.ErrorType)
	}
	if len(payload.ConversionRates) == 0 {
		return nil, fmt.Errorf("%w: response has no conversion_rates", model.ErrRateFetch)
	}

	return payload.Table(), nil
}
