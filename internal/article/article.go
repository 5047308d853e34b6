// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package article writes the promotional post for a selected paper. The
// post combines two generated passages (a plain-language summary and three
// "why it matters" bullets) with the paper's metrics and score.
package article

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdiddy/paper-spotlight/internal/generate"
	"github.com/pdiddy/paper-spotlight/internal/rank"
	"github.com/pdiddy/paper-spotlight/pkg/types"
)

const hashtags = "#AI #Research #Innovation #TrendingAI #MachineLearning"

const summaryPrompt = `In ≤%d words, explain this TRENDING ML paper (with %s GitHub stars) so a non-technical product leader understands it. Avoid equations; use one real-world analogy. Emphasize why it's trending and getting attention.

Title: %s
URL: %s
Published: %s`

const hotTakePrompt = `This paper has %s GitHub stars and is trending. Give three short, bold, evidence-based bullet points on why this trending research matters for industry within the next 12 months. Focus on competitive advantages and market opportunities. Start each line with •`

// Writer turns a ranked candidate into a post.
type Writer struct {
	gen     generate.Generator
	cfg     types.GeneratorConfig
	printer *message.Printer
}

// NewWriter returns a Writer that calls gen with the limits and
// temperatures in cfg.
func NewWriter(gen generate.Generator, cfg types.GeneratorConfig) *Writer {
	return &Writer{
		gen:     gen,
		cfg:     cfg,
		printer: message.NewPrinter(language.English),
	}
}

// Post is a finished write-up and the passages it was assembled from.
type Post struct {
	Summary string
	HotTake string
	Text    string
}

// Write generates the summary and hot take for c and formats the post.
// A generator failure aborts the write; no partial post is returned.
func (w *Writer) Write(ctx context.Context, c rank.RankedCandidate) (Post, error) {
	p := c.Paper
	stars := w.printer.Sprintf("%d", max(p.GitHubStars, 0))

	summary, err := w.gen.Generate(ctx, w.SummaryPrompt(p), generate.Options{
		Temperature: w.cfg.SummaryTemperature,
		MaxTokens:   w.cfg.MaxTokens,
	})
	if err != nil {
		return Post{}, fmt.Errorf("generating summary: %w", err)
	}

	hotTake, err := w.gen.Generate(ctx, fmt.Sprintf(hotTakePrompt, stars), generate.Options{
		Temperature: w.cfg.HotTakeTemperature,
		MaxTokens:   w.cfg.MaxTokens,
	})
	if err != nil {
		return Post{}, fmt.Errorf("generating hot take: %w", err)
	}

	return Post{
		Summary: summary,
		HotTake: hotTake,
		Text:    w.format(c, summary, hotTake),
	}, nil
}

// SummaryPrompt returns the prompt used for the plain-language summary.
func (w *Writer) SummaryPrompt(p types.PaperRecord) string {
	words := w.cfg.WordsLimit
	if words <= 0 {
		words = types.DefaultConfig().Generator.WordsLimit
	}
	return fmt.Sprintf(summaryPrompt,
		words,
		w.printer.Sprintf("%d", max(p.GitHubStars, 0)),
		p.Title,
		orDefault(p.URLAbs, "URL not available"),
		orDefault(p.Published, "Recently"))
}

func (w *Writer) format(c rank.RankedCandidate, summary, hotTake string) string {
	p := c.Paper
	var b strings.Builder
	fmt.Fprintf(&b, "✨ *%s*\n", p.Title)
	fmt.Fprintf(&b, "(%s)\n\n", orDefault(p.URLAbs, "URL not available"))
	fmt.Fprintf(&b, "%s\n\n", summary)
	fmt.Fprintf(&b, "🔥 *Why this is trending*:\n%s\n\n", hotTake)
	w.printer.Fprintf(&b, "📊 *Trending metrics*: ⭐ %d GitHub stars | 📅 %s | 🎯 Score: %d\n\n",
		max(p.GitHubStars, 0), orDefault(p.Published, "Recent"), c.Combined)
	b.WriteString(hashtags)
	b.WriteString("\n")
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
