// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one spotlight pass: fetch candidates, reduce them to
// recent papers, rank them, and optionally write the post for the winner.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdiddy/paper-spotlight/internal/article"
	"github.com/pdiddy/paper-spotlight/internal/rank"
	"github.com/pdiddy/paper-spotlight/internal/source"
)

var (
	// ErrNoPapers means the source returned no candidates.
	ErrNoPapers = errors.New("no suitable papers found")

	// ErrNoSelection means candidates existed but none could be ranked.
	ErrNoSelection = errors.New("could not select a paper")
)

// ArticleWriter produces the post for the selected candidate.
type ArticleWriter interface {
	Write(ctx context.Context, c rank.RankedCandidate) (article.Post, error)
}

// Deps wires the stages of a run. Writer may be nil to stop after selection.
type Deps struct {
	Source   source.Source
	Filter   *rank.RecencyFilter
	Selector *rank.Selector
	Writer   ArticleWriter
	Logger   *slog.Logger

	// Out receives progress lines. Nil discards.
	Out io.Writer
}

// Result is everything a run derived. Nothing in it is persisted.
type Result struct {
	Fetched   int
	Reduction rank.Reduction
	Selection rank.Selection
	Best      rank.RankedCandidate
	Post      article.Post
}

// Run executes the pipeline once. Collaborator errors are wrapped with %w so
// callers can match httputil and generate sentinels; the generator is never
// called when there is nothing to select.
func Run(ctx context.Context, d Deps) (Result, error) {
	var res Result
	w := d.Out
	if w == nil {
		w = io.Discard
	}
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fmt.Fprintf(w, "Searching for trending ML papers from %d+ (source: %s)...\n", d.Filter.CutoffYear(), d.Source.Name())
	recs, err := d.Source.Fetch(ctx)
	if err != nil {
		return res, fmt.Errorf("fetching candidates from %s: %w", d.Source.Name(), err)
	}
	res.Fetched = len(recs)
	logger.Info("candidates fetched", slog.String("source", d.Source.Name()), slog.Int("count", len(recs)))
	if len(recs) == 0 {
		return res, ErrNoPapers
	}

	res.Reduction = d.Filter.Reduce(recs)
	if res.Reduction.Fallback {
		fmt.Fprintf(w, "No papers from %d+; considering the first %d of %d candidates.\n",
			d.Filter.CutoffYear(), len(res.Reduction.Records), res.Reduction.Total)
	} else {
		fmt.Fprintf(w, "Found %d recent papers out of %d.\n", len(res.Reduction.Records), res.Reduction.Total)
	}
	if len(res.Reduction.Records) == 0 {
		return res, ErrNoPapers
	}

	res.Selection = d.Selector.Select(res.Reduction.Records)
	best, ok := res.Selection.Best()
	if !ok {
		return res, ErrNoSelection
	}
	res.Best = best
	logger.Info("paper selected",
		slog.String("id", best.Paper.ID),
		slog.Int("combined", best.Combined))

	if d.Writer == nil {
		return res, nil
	}

	post, err := d.Writer.Write(ctx, best)
	if err != nil {
		return res, fmt.Errorf("writing article: %w", err)
	}
	res.Post = post
	return res, nil
}
