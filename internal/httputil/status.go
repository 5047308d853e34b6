// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Errors shared by every HTTP collaborator. Callers branch on them with
// errors.Is to tell an auth problem from an outage.
var (
	// ErrUnauthorized means the server rejected the credentials (401, 403).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable means the server could not be reached or is down
	// (transport failure, 5xx, exhausted 429 retries).
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnexpectedStatus covers any other non-200 answer.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

const errorBodyLimit = 512

// Transport wraps a client.Do failure so it matches ErrUnavailable.
func Transport(service string, err error) error {
	return fmt.Errorf("%s request: %w: %w", service, ErrUnavailable, err)
}

// CheckStatus returns nil for HTTP 200 and a classified error otherwise.
// The error carries the start of the response body for context. It does
// not close the body.
func CheckStatus(service string, resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	detail := strings.TrimSpace(string(b))

	var kind error
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		kind = ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		kind = ErrUnavailable
	default:
		kind = ErrUnexpectedStatus
	}

	if detail == "" {
		return fmt.Errorf("%s returned HTTP %d: %w", service, resp.StatusCode, kind)
	}
	return fmt.Errorf("%s returned HTTP %d: %w: %s", service, resp.StatusCode, kind, detail)
}
