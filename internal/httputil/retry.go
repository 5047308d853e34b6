// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the metadata sources and
// the text generator: retry on throttling and status classification.
package httputil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 and 503 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// maxRetryAfter caps how long a server-supplied Retry-After may stall a run.
const maxRetryAfter = 60 * time.Second

const defaultMaxRetries = 3

// Policy configures DoWithRetry.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	// Zero uses the default (3).
	MaxRetries int

	// Logger receives one debug record per retry. Nil discards.
	Logger *slog.Logger
}

// DoWithRetry executes an HTTP request and retries on HTTP 429 (Too Many
// Requests) and 503 (Service Unavailable). The delay honors a Retry-After
// header given in seconds, up to one minute; otherwise it starts at
// RetryBaseDelay and doubles each attempt.
//
// Transport errors are returned immediately. Requests with a body must be
// replayable (GetBody set, as http.NewRequest does for in-memory readers).
// On each retry the response
// body is drained and closed before sleeping. If the context is cancelled
// during a backoff wait the function returns ctx.Err(). After exhausting
// retries the last response is returned so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, p Policy) (*http.Response, error) {
	maxRetries := p.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for attempt := 0; ; attempt++ {
		r := req.Clone(ctx)
		if attempt > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			r.Body = body
		}

		resp, err := client.Do(r)
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		backoff := backoffFor(resp, attempt)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		logger.Debug("retrying request",
			slog.String("url", req.URL.Redacted()),
			slog.Int("status", resp.StatusCode),
			slog.Duration("backoff", backoff),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", maxRetries))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

func backoffFor(resp *http.Response, attempt int) time.Duration {
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs >= 0 {
			return min(time.Duration(secs)*time.Second, maxRetryAfter)
		}
	}
	return RetryBaseDelay << attempt
}
