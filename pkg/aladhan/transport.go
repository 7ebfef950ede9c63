package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// get performs a GET request against the API with retry logic and returns
// the raw data section of the response envelope.
//
// It handles:
// - Request construction with proper headers
// - Envelope parsing (JSON)
// - Error handling and retry logic
// - Context cancellation
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	endpoint := strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var lastErr error
	backoff := c.backoff

	for i := 0; i < c.maxRetries; i++ {
		c.logDebugf("aladhan: GET %s (attempt %d/%d)", path, i+1, c.maxRetries)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("http request failed: %w", ctxErr)
			}
			lastErr = err
			if shouldRetryNetworkError(err) && i < c.maxRetries-1 {
				c.logDebugf("aladhan: network error, retrying: %v", err)
				if !sleep(ctx, backoff) {
					return nil, ctx.Err()
				}
				backoff = nextBackoff(backoff)
				continue
			}
			return nil, fmt.Errorf("http request failed: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			apiErr := &Error{Code: resp.StatusCode, Message: errorMessage(body, resp.Status)}
			lastErr = apiErr
			if apiErr.Temporary() && i < c.maxRetries-1 {
				c.logDebugf("aladhan: server error, retrying: %v", apiErr)
				if !sleep(ctx, backoff) {
					return nil, ctx.Err()
				}
				backoff = nextBackoff(backoff)
				continue
			}
			return nil, apiErr
		}

		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("failed to parse JSON response: %w", err)
		}

		if env.Code != http.StatusOK {
			return nil, &Error{Code: env.Code, Message: errorMessage(body, env.Status)}
		}

		c.logDebugf("aladhan: GET %s succeeded", path)
		return env.Data, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// errorMessage extracts a human-readable message from an error envelope.
// Aladhan reports failures as {"code":400,"status":"BAD_REQUEST","data":"..."}.
func errorMessage(body []byte, fallback string) string {
	var env struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return fallback
	}

	var msg string
	if err := json.Unmarshal(env.Data, &msg); err == nil && msg != "" {
		return msg
	}
	if env.Status != "" {
		return env.Status
	}
	return fallback
}

// shouldRetryNetworkError checks if a network error is retryable.
func shouldRetryNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// sleep waits for the specified duration or until context is cancelled.
// Returns true if sleep completed, false if context was cancelled.
func sleep(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// nextBackoff calculates the next backoff duration with exponential increase.
// Maximum backoff is capped at 30 seconds.
func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > 30*time.Second {
		return 30 * time.Second
	}
	return next
}
