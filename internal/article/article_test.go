// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-spotlight/internal/generate"
	"github.com/pdiddy/paper-spotlight/internal/httputil"
	"github.com/pdiddy/paper-spotlight/internal/rank"
	"github.com/pdiddy/paper-spotlight/pkg/types"
)

// --- fake generator ---

type call struct {
	prompt string
	opts   generate.Options
}

type fakeGenerator struct {
	replies []string
	errAt   int // 1-based call that fails; 0 never fails
	err     error
	calls   []call
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, opts generate.Options) (string, error) {
	f.calls = append(f.calls, call{prompt: prompt, opts: opts})
	if f.errAt == len(f.calls) {
		return "", f.err
	}
	return f.replies[len(f.calls)-1], nil
}

func candidate() rank.RankedCandidate {
	return rank.RankedCandidate{
		Paper: types.PaperRecord{
			ID:          "b",
			Title:       "Paper B",
			URLAbs:      "https://arxiv.org/abs/2503.00002",
			Published:   "2025-03-10",
			GitHubStars: 500,
			Conference:  "ICLR 2025",
		},
		Score:      types.ScoreBreakdown{Popularity: 5000, Total: 4990},
		Validation: types.ValidationBreakdown{Total: 25},
		Combined:   5015,
	}
}

func TestWrite(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"Think of it as a librarian.", "• Faster\n• Cheaper\n• Better"}}
	w := NewWriter(gen, types.DefaultConfig().Generator)

	post, err := w.Write(context.Background(), candidate())
	require.NoError(t, err)

	want := "✨ *Paper B*\n" +
		"(https://arxiv.org/abs/2503.00002)\n\n" +
		"Think of it as a librarian.\n\n" +
		"🔥 *Why this is trending*:\n" +
		"• Faster\n• Cheaper\n• Better\n\n" +
		"📊 *Trending metrics*: ⭐ 500 GitHub stars | 📅 2025-03-10 | 🎯 Score: 5,015\n\n" +
		"#AI #Research #Innovation #TrendingAI #MachineLearning\n"
	assert.Equal(t, want, post.Text)
	assert.Equal(t, "Think of it as a librarian.", post.Summary)

	require.Len(t, gen.calls, 2)
	assert.Contains(t, gen.calls[0].prompt, "In ≤250 words")
	assert.Contains(t, gen.calls[0].prompt, "(with 500 GitHub stars)")
	assert.Contains(t, gen.calls[0].prompt, "Title: Paper B\nURL: https://arxiv.org/abs/2503.00002\nPublished: 2025-03-10")
	assert.Equal(t, generate.Options{Temperature: 0.65, MaxTokens: 512}, gen.calls[0].opts)

	assert.Contains(t, gen.calls[1].prompt, "This paper has 500 GitHub stars and is trending.")
	assert.Contains(t, gen.calls[1].prompt, "Start each line with •")
	assert.Equal(t, generate.Options{Temperature: 0.8, MaxTokens: 512}, gen.calls[1].opts)
}

func TestWriteMissingFields(t *testing.T) {
	c := rank.RankedCandidate{
		Paper:    types.PaperRecord{Title: "Bare", GitHubStars: 12345},
		Combined: 0,
	}
	gen := &fakeGenerator{replies: []string{"s", "h"}}
	w := NewWriter(gen, types.DefaultConfig().Generator)

	post, err := w.Write(context.Background(), c)
	require.NoError(t, err)

	assert.Contains(t, post.Text, "(URL not available)")
	assert.Contains(t, post.Text, "⭐ 12,345 GitHub stars | 📅 Recent | 🎯 Score: 0")
	assert.Contains(t, gen.calls[0].prompt, "URL: URL not available\nPublished: Recently")
}

func TestWriteGeneratorFailure(t *testing.T) {
	tests := []struct {
		name    string
		errAt   int
		wantMsg string
	}{
		{"summary fails", 1, "generating summary"},
		{"hot take fails", 2, "generating hot take"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := errors.Join(httputil.ErrUnauthorized, errors.New("bad key"))
			gen := &fakeGenerator{replies: []string{"s", "h"}, errAt: tt.errAt, err: cause}
			w := NewWriter(gen, types.DefaultConfig().Generator)

			post, err := w.Write(context.Background(), candidate())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.ErrorIs(t, err, httputil.ErrUnauthorized)
			assert.Empty(t, post.Text)
			assert.Len(t, gen.calls, tt.errAt)
		})
	}
}

func TestSummaryPromptWordLimit(t *testing.T) {
	cfg := types.DefaultConfig().Generator
	cfg.WordsLimit = 120
	w := NewWriter(&fakeGenerator{}, cfg)
	assert.Contains(t, w.SummaryPrompt(types.PaperRecord{Title: "T"}), "In ≤120 words")

	cfg.WordsLimit = 0
	w = NewWriter(&fakeGenerator{}, cfg)
	assert.Contains(t, w.SummaryPrompt(types.PaperRecord{Title: "T"}), "In ≤250 words")
}
