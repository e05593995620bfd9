// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the shared HTTP layer: a timeout-bounded
// client and transient-failure retries used by both the metadata
// resolver and the reference table loader.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/pdiddy/doi-navigator/pkg/types"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// transient HTTP failures. Tests override this to avoid real sleeps.
var RetryBaseDelay = 500 * time.Millisecond

const (
	defaultMaxRetries = 4
	defaultTimeout    = 15 * time.Second
)

// transientStatus reports whether an HTTP status is worth retrying on an
// idempotent GET: rate limiting and upstream hiccups, never client errors.
func transientStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// NewClient builds the HTTP client shared by network stages. Redirects
// are followed (content negotiation depends on it); each request is
// bounded by cfg.Timeout, defaulting to 15 s.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// DoWithRetry executes an HTTP request and retries transient failures
// (429, 500, 502, 503, 504) with exponential backoff. The delay starts
// at RetryBaseDelay (500 ms) and doubles each attempt.
//
// When maxRetries is 0 the default (4) is used. Before sleeping, the
// failed response body is drained and closed. If the context is
// cancelled during a backoff wait the function returns ctx.Err(). After
// exhausting retries the last response is returned so the caller can
// inspect its status.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !transientStatus(resp.StatusCode) {
			return resp, nil
		}

		// Exhausted retries: hand the transient response back as-is.
		if attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
