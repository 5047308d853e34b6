// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"log/slog"

	"github.com/pdiddy/paper-spotlight/pkg/types"
)

const defaultFallbackSize = 10

// RecencyFilter keeps papers published in or after a cutoff year.
type RecencyFilter struct {
	cutoffYear   int
	fallbackSize int
	logger       *slog.Logger
}

// NewRecencyFilter builds a filter from cfg. A zero cutoff year resolves to
// the year of clock() at construction time.
func NewRecencyFilter(cfg types.RankingConfig, clock Clock, logger *slog.Logger) *RecencyFilter {
	cutoff := cfg.CutoffYear
	if cutoff == 0 {
		cutoff = clockOrNow(clock)().Year()
	}
	fallback := cfg.FallbackSize
	if fallback <= 0 {
		fallback = defaultFallbackSize
	}
	return &RecencyFilter{
		cutoffYear:   cutoff,
		fallbackSize: fallback,
		logger:       loggerOrDiscard(logger),
	}
}

// CutoffYear returns the resolved cutoff year.
func (f *RecencyFilter) CutoffYear() int { return f.cutoffYear }

// IsRecent reports whether rec was published in or after the cutoff year.
// Missing or malformed dates are not recent. Future dates are.
func (f *RecencyFilter) IsRecent(rec types.PaperRecord) bool {
	d := ParseDate(rec.Published)
	if !d.OK() {
		return false
	}
	return d.Time.Year() >= f.cutoffYear
}

// Reduction is the candidate set left after recency filtering.
type Reduction struct {
	// Records are the surviving candidates in their original order.
	Records []types.PaperRecord

	// Total is the size of the unfiltered input.
	Total int

	// Fallback is true when no record was recent and Records holds the
	// first records of the unfiltered input instead.
	Fallback bool
}

// Reduce returns the recent records of recs. When none qualify it falls
// back to the first FallbackSize records of recs, in their original order,
// and logs a warning; trending signals still count without a confirmed date.
// The returned records never share storage with recs.
func (f *RecencyFilter) Reduce(recs []types.PaperRecord) Reduction {
	out := Reduction{Total: len(recs)}

	for _, rec := range recs {
		if f.IsRecent(rec) {
			out.Records = append(out.Records, rec)
		}
	}
	f.logger.Debug("recency filter applied",
		slog.Int("total", len(recs)),
		slog.Int("recent", len(out.Records)),
		slog.Int("cutoff_year", f.cutoffYear))

	if len(out.Records) > 0 || len(recs) == 0 {
		return out
	}

	n := min(f.fallbackSize, len(recs))
	out.Records = append([]types.PaperRecord(nil), recs[:n]...)
	out.Fallback = true
	f.logger.Warn("no recent papers, falling back to unfiltered candidates",
		slog.Int("cutoff_year", f.cutoffYear),
		slog.Int("kept", n),
		slog.Int("total", len(recs)))
	return out
}
