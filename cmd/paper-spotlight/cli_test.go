// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-spotlight/internal/source"
	"github.com/pdiddy/paper-spotlight/pkg/types"
)

const cliNow = "2026-03-15T12:00:00Z"

// runCLI executes rootCmd with args and returns what it wrote to stdout and
// stderr. Flag values and the --input override are reset afterwards because
// cobra keeps them on the package-level commands.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd.PersistentFlags())
		for _, c := range rootCmd.Commands() {
			resetFlags(c.Flags())
		}
		viper.Set("source.kind", nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// writeTestSnapshot saves three 2026 candidates; "Sparse Routing at Scale"
// wins on stars.
func writeTestSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.yaml")
	papers := []types.PaperRecord{
		{
			ID: "2603.00001", Title: "Tiny Adapters", Published: "2026-03-01",
			GitHubStars: 12, URLAbs: "https://arxiv.org/abs/2603.00001",
		},
		{
			ID: "2603.00002", Title: "Sparse Routing at Scale", Published: "2026-03-10",
			GitHubStars: 950, URLAbs: "https://arxiv.org/abs/2603.00002",
			Conference: "ICML 2026",
		},
		{
			ID: "2603.00003", Title: "Diffusion for Tables", Published: "2026-02-20",
			GitHubStars: 140, URLAbs: "https://arxiv.org/abs/2603.00003",
		},
	}
	require.NoError(t, source.WriteSnapshot(path, "pwc", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), papers))
	return path
}

func TestSelectCommand(t *testing.T) {
	snap := writeTestSnapshot(t)

	stdout, stderr, err := runCLI(t, "select", "--input", snap, "--now", cliNow)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Searching for trending ML papers from 2026+")
	assert.Contains(t, stdout, "Found 3 recent papers out of 3.")
	assert.Contains(t, stdout, "Top trending candidates:")
	assert.Contains(t, stdout, "1. Sparse Routing at Scale")
	assert.Contains(t, stdout, "SELECTED: Sparse Routing at Scale\n")
	assert.Contains(t, stdout, "Total Trending Score: ")
	assert.NotContains(t, stderr, "SELECTED:")
}

func TestSelectCommandJSON(t *testing.T) {
	snap := writeTestSnapshot(t)

	stdout, stderr, err := runCLI(t, "select", "--json", "--input", snap, "--now", cliNow)
	require.NoError(t, err)

	var got selectionJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got), "stdout holds only the JSON document")
	assert.Equal(t, 2026, got.CutoffYear)
	assert.Equal(t, 3, got.Total)
	assert.False(t, got.Fallback)
	require.Len(t, got.Ranked, 3)
	assert.Equal(t, "2603.00002", got.Ranked[0].Paper.ID)
	assert.Equal(t, got.Ranked[0].Score.Total+got.Ranked[0].Validation.Total, got.Ranked[0].Combined)
	for i := 1; i < len(got.Ranked); i++ {
		assert.GreaterOrEqual(t, got.Ranked[i-1].Combined, got.Ranked[i].Combined)
	}

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &raw))
	assert.ElementsMatch(t, []string{"cutoff_year", "total", "fallback", "ranked"}, mapKeys(raw))

	assert.Contains(t, stderr, "Searching for trending ML papers from 2026+")
	assert.NotContains(t, stdout, "Top trending candidates:")
	assert.NotContains(t, stderr, "Top trending candidates:")
}

func TestSelectCommandCutoffFallback(t *testing.T) {
	snap := writeTestSnapshot(t)

	stdout, _, err := runCLI(t, "select", "--input", snap, "--now", cliNow, "--cutoff-year", "2027")
	require.NoError(t, err)

	assert.Contains(t, stdout, "No papers from 2027+")
	assert.Contains(t, stdout, "SELECTED: Sparse Routing at Scale")
}

func TestWriteCommand(t *testing.T) {
	snap := writeTestSnapshot(t)

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"model":"gpt-4o-mini"`)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Routing tokens sparsely cuts cost."}}]}`)
	}))
	defer ts.Close()
	t.Setenv("PAPER_SPOTLIGHT_GENERATOR_ENDPOINT", ts.URL)

	stdout, _, err := runCLI(t, "write", "--input", snap, "--now", cliNow,
		"--api-key", "sk-test", "--model", "gpt-4o-mini")
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load(), "summary and hot take")
	rule := strings.Repeat("=", 80)
	assert.Contains(t, stdout, "SELECTED: Sparse Routing at Scale\n")
	assert.Equal(t, 2, strings.Count(stdout, rule+"\n"))
	assert.Contains(t, stdout, "✨ *Sparse Routing at Scale*")
	assert.Contains(t, stdout, "Routing tokens sparsely cuts cost.")
	assert.True(t, strings.HasSuffix(stdout, rule+"\nGenerated 2026-03-15 12:00:00\n"), stdout)

	sel := strings.Index(stdout, "SELECTED:")
	post := strings.Index(stdout, rule)
	assert.Less(t, sel, post, "selection precedes the post")
}

func TestWriteCommandGeneratorFailure(t *testing.T) {
	snap := writeTestSnapshot(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer ts.Close()
	t.Setenv("PAPER_SPOTLIGHT_GENERATOR_ENDPOINT", ts.URL)

	stdout, _, err := runCLI(t, "write", "--input", snap, "--now", cliNow, "--api-key", "sk-bad")
	require.Error(t, err)
	assert.NotContains(t, stdout, "Generated ")
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
