// Package registry provides a crates.io API client used as an optional
// fallback when cargo search yields no usable version.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the crates.io API endpoint
const DefaultBaseURL = "https://crates.io/api/v1"

var (
	// ErrMaxRetriesExceeded is returned when all retry attempts have failed
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
	// ErrCrateNotFound is returned when the registry has no such crate
	ErrCrateNotFound = errors.New("crate not found on registry")
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts (default: 3)
	MaxRetries int
	// BaseDelay is the initial delay before first retry (default: 1s)
	BaseDelay time.Duration
	// MaxDelay is the maximum delay between retries (default: 4s)
	MaxDelay time.Duration
	// Timeout is the timeout for each individual request (default: 30s)
	Timeout time.Duration
}

// DefaultRetryConfig returns the default retry configuration.
// Uses exponential backoff with delays of 1s, 2s, 4s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   4 * time.Second,
		Timeout:    30 * time.Second,
	}
}

// Client queries the crates.io API with retry support.
type Client struct {
	baseURL string
	client  *http.Client
	config  RetryConfig
	// delayFunc allows overriding the delay function for testing
	delayFunc func(time.Duration)
}

// NewClient creates a registry client with the default retry configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultBaseURL, DefaultRetryConfig())
}

// NewClientWithConfig creates a registry client for a specific endpoint
// and retry configuration.
func NewClientWithConfig(baseURL string, config RetryConfig) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		config:    config,
		delayFunc: time.Sleep,
	}
}

// SetDelayFunc sets a custom delay function (useful for testing).
func (c *Client) SetDelayFunc(fn func(time.Duration)) {
	c.delayFunc = fn
}

// crateResponse matches the subset of the crates.io crate endpoint we read
type crateResponse struct {
	Crate struct {
		MaxStableVersion string `json:"max_stable_version"`
		MaxVersion       string `json:"max_version"`
	} `json:"crate"`
}

// LatestVersion returns the latest published version of the named
// crate, preferring the max stable version over pre-releases.
func (c *Client) LatestVersion(ctx context.Context, name string) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/crates/%s", c.baseURL, name))
	if err != nil {
		return "", err
	}

	var parsed crateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse registry response: %w", err)
	}

	if parsed.Crate.MaxStableVersion != "" {
		return parsed.Crate.MaxStableVersion, nil
	}
	return parsed.Crate.MaxVersion, nil
}

// get performs a GET request with exponential-backoff retries on
// network errors and 5xx responses.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Apply delay before retry (not on first attempt)
		if attempt > 0 {
			c.delayFunc(c.calculateDelay(attempt))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "cargokeep")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: status %d", resp.StatusCode)
			continue
		}

		if resp.StatusCode == http.StatusNotFound {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, ErrCrateNotFound
		}

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("registry request returned status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read registry response: %w", err)
		}
		return body, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrMaxRetriesExceeded, lastErr)
}

// calculateDelay calculates the delay for a given retry attempt.
// Uses exponential backoff: delay = baseDelay * 2^(attempt-1)
func (c *Client) calculateDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	multiplier := 1 << (attempt - 1)
	delay := c.config.BaseDelay * time.Duration(multiplier)
	if delay > c.config.MaxDelay {
		delay = c.config.MaxDelay
	}
	return delay
}
