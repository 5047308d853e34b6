// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores candidate papers and selects the most trending one.
// Implements: recency filtering with fallback, the trending scorer, the
//
//	external validator, and the selector with its top-N report.
//
// See docs/ARCHITECTURE.md § Ranking. Every type here holds configuration only;
// scoring the same records against the same clock always gives the same result.
package rank

import (
	"log/slog"
	"time"
)

// Clock returns the reference "now" used for age computation. Tests inject
// a fixed clock; the CLI uses time.Now unless --now is given.
type Clock func() time.Time

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
