// Package forexapi is a small client for the Vallabh Forex backend. It wraps
// the JSON endpoints the site's forms call, decodes the response envelope and
// surfaces per-field validation errors as typed values.
package forexapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds the configuration for the client.
type Config struct {
	// BaseURL is the root URL of the backend.
	// Examples: "https://vallabhforex.com" or "http://localhost:3000/api".
	// The "/api" suffix is appended automatically if missing.
	BaseURL string

	// HTTPClient is an optional custom HTTP client.
	// If nil, a default client with 10s timeout is used.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if !strings.HasSuffix(c.BaseURL, "/api") {
		c.BaseURL = c.BaseURL + "/api"
	}
}

// Client calls the forex backend API.
type Client struct {
	cfg Config
}

// NewClient creates a new client with the given configuration.
func NewClient(cfg Config) *Client {
	cfg.defaults()
	return &Client{cfg: cfg}
}

// envelope mirrors the server's response shape.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []FieldError    `json:"errors"`
	Disclaimer string          `json:"disclaimer"`
	Timestamp  string          `json:"timestamp"`
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("forexapi: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("forexapi: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forexapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("forexapi: read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("forexapi: unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	if !env.Success {
		if resp.StatusCode == http.StatusBadRequest && len(env.Errors) > 0 {
			return nil, &ValidationError{Fields: env.Errors}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}

// Health reports whether the API is up.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	env, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	return &HealthStatus{Message: env.Message, Timestamp: env.Timestamp}, nil
}

// Services fetches the fixed service catalog.
func (c *Client) Services(ctx context.Context) ([]Service, error) {
	env, err := c.do(ctx, http.MethodGet, "/services", nil)
	if err != nil {
		return nil, err
	}
	var services []Service
	if err := json.Unmarshal(env.Data, &services); err != nil {
		return nil, fmt.Errorf("forexapi: parse services: %w", err)
	}
	return services, nil
}

// ExchangeRates fetches the indicative rate table and its disclaimer.
func (c *Client) ExchangeRates(ctx context.Context) (map[string]Rate, string, error) {
	env, err := c.do(ctx, http.MethodGet, "/exchange-rates", nil)
	if err != nil {
		return nil, "", err
	}
	var rates map[string]Rate
	if err := json.Unmarshal(env.Data, &rates); err != nil {
		return nil, "", fmt.Errorf("forexapi: parse rates: %w", err)
	}
	return rates, env.Disclaimer, nil
}

// SubmitContact sends a contact form submission and returns the confirmation
// message on success.
func (c *Client) SubmitContact(ctx context.Context, form ContactForm) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/contact", form)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// RequestQuote sends a quote request and returns the confirmation message.
func (c *Client) RequestQuote(ctx context.Context, form QuoteForm) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/quote", form)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// SubmitServiceInquiry sends a service inquiry and returns the confirmation
// message.
func (c *Client) SubmitServiceInquiry(ctx context.Context, form InquiryForm) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/service-inquiry", form)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
