// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"fmt"
	"io"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/paper-spotlight/pkg/types"
)

const (
	defaultReportSize = 3
	defaultTitleWidth = 60
)

// RankedCandidate is a paper together with its full score provenance.
type RankedCandidate struct {
	Paper      types.PaperRecord         `json:"paper" yaml:"paper"`
	Score      types.ScoreBreakdown      `json:"score" yaml:"score"`
	Validation types.ValidationBreakdown `json:"validation" yaml:"validation"`

	// Combined is Score.Total + Validation.Total, the sole ranking key.
	Combined int `json:"combined" yaml:"combined"`
}

// Selection holds every candidate in rank order, best first.
type Selection struct {
	Ranked []RankedCandidate
}

// Best returns the top-ranked candidate. ok is false when there was
// nothing to select from.
func (s Selection) Best() (c RankedCandidate, ok bool) {
	if len(s.Ranked) == 0 {
		return RankedCandidate{}, false
	}
	return s.Ranked[0], true
}

// Top returns at most n candidates from the head of the ranking.
func (s Selection) Top(n int) []RankedCandidate {
	if n > len(s.Ranked) {
		n = len(s.Ranked)
	}
	if n < 0 {
		n = 0
	}
	return s.Ranked[:n]
}

// Selector ranks candidates by combined score and reports the leaders.
type Selector struct {
	scorer     *Scorer
	validator  *Validator
	reportSize int
	titleWidth int
	w          io.Writer
}

// NewSelector builds a Selector. The top-N report is written to w; a nil
// w discards it.
func NewSelector(scorer *Scorer, validator *Validator, cfg types.RankingConfig, w io.Writer) *Selector {
	reportSize := cfg.ReportSize
	if reportSize <= 0 {
		reportSize = defaultReportSize
	}
	titleWidth := cfg.TitleWidth
	if titleWidth <= 0 {
		titleWidth = defaultTitleWidth
	}
	if w == nil {
		w = io.Discard
	}
	return &Selector{
		scorer:     scorer,
		validator:  validator,
		reportSize: reportSize,
		titleWidth: titleWidth,
		w:          w,
	}
}

// Select enriches each record that lacks a breakdown, ranks all of them by
// combined score, and writes the top-N report. Equal scores keep their input
// order. An empty input yields an empty Selection and no report.
// recs itself is left untouched; enriched copies live in the result.
func (s *Selector) Select(recs []types.PaperRecord) Selection {
	if len(recs) == 0 {
		return Selection{}
	}

	ranked := make([]RankedCandidate, len(recs))
	for i, rec := range recs {
		if rec.Trending == nil {
			b := s.scorer.Score(rec)
			rec.Trending = &b
		}
		if rec.Validation == nil {
			v := s.validator.Validate(rec)
			rec.Validation = &v
		}
		ranked[i] = RankedCandidate{
			Paper:      rec,
			Score:      *rec.Trending,
			Validation: *rec.Validation,
			Combined:   rec.Trending.Total + rec.Validation.Total,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Combined > ranked[j].Combined
	})

	sel := Selection{Ranked: ranked}
	s.report(sel.Top(s.reportSize))
	return sel
}

func (s *Selector) report(top []RankedCandidate) {
	fmt.Fprintln(s.w, "Top trending candidates:")
	for i, c := range top {
		fmt.Fprintf(s.w, "%d. %s\n", i+1, runewidth.Truncate(c.Paper.Title, s.titleWidth, "..."))
		fmt.Fprintf(s.w, "   Trending score:   %d (popularity %d + recency %d + prestige %d)\n",
			c.Score.Total, c.Score.Popularity, c.Score.Recency, c.Score.Prestige)
		fmt.Fprintf(s.w, "   Validation score: %d\n", c.Validation.Total)
		fmt.Fprintf(s.w, "   Total score:      %d\n", c.Combined)
	}
	fmt.Fprintln(s.w)
}
