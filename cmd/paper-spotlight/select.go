// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-spotlight/internal/pipeline"
	"github.com/pdiddy/paper-spotlight/internal/rank"
	"github.com/pdiddy/paper-spotlight/internal/source"
	"github.com/pdiddy/paper-spotlight/pkg/types"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Rank candidate papers and print the top three",
	Long: `Select fetches candidates, keeps papers published in or after the cutoff
year (falling back to the first candidates when none qualify), scores them,
and prints the top three with their score breakdown. No text is generated.`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().Bool("json", false, "output all ranked candidates as JSON")

	rootCmd.AddCommand(selectCmd)
}

// selectionJSON is the --json output of select.
type selectionJSON struct {
	CutoffYear int                    `json:"cutoff_year"`
	Total      int                    `json:"total"`
	Fallback   bool                   `json:"fallback"`
	Ranked     []rank.RankedCandidate `json:"ranked"`
}

func runSelect(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	progress, report := out, out
	if asJSON {
		progress, report = cmd.ErrOrStderr(), io.Discard
	}

	deps, err := buildDeps(cmd, cfg, progress, report)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(cmd.Context(), deps)
	if stop, err := handleEmpty(out, err); stop {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(selectionJSON{
			CutoffYear: deps.Filter.CutoffYear(),
			Total:      res.Reduction.Total,
			Fallback:   res.Reduction.Fallback,
			Ranked:     res.Selection.Ranked,
		})
	}

	printSelected(out, res.Best)
	return nil
}

// buildDeps wires the ranking stages from cfg. progress receives status
// lines and report receives the top-N report.
func buildDeps(cmd *cobra.Command, cfg types.Config, progress, report io.Writer) (pipeline.Deps, error) {
	clock, err := clockFromFlag(cmd)
	if err != nil {
		return pipeline.Deps{}, err
	}

	src, err := source.New(cfg.Source, source.Options{
		Logger: logger,
		Token:  secretDefault("pwc-api-token", ""),
	})
	if err != nil {
		return pipeline.Deps{}, err
	}

	return pipeline.Deps{
		Source: src,
		Filter: rank.NewRecencyFilter(cfg.Ranking, clock, logger),
		Selector: rank.NewSelector(
			rank.NewScorer(cfg.Ranking, clock),
			rank.NewValidator(cfg.Ranking),
			cfg.Ranking,
			report,
		),
		Logger: logger,
		Out:    progress,
	}, nil
}

// handleEmpty prints the user-facing message for an empty candidate set.
// It reports stop=true whenever the caller should return, with the error
// to return (nil for the empty cases, which are not failures).
func handleEmpty(w io.Writer, err error) (bool, error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, pipeline.ErrNoPapers):
		fmt.Fprintln(w, "No suitable papers found. Try again later.")
		return true, nil
	case errors.Is(err, pipeline.ErrNoSelection):
		fmt.Fprintln(w, "Could not select a paper. Try again later.")
		return true, nil
	default:
		return true, err
	}
}

func printSelected(w io.Writer, best rank.RankedCandidate) {
	fmt.Fprintf(w, "SELECTED: %s\n", best.Paper.Title)
	fmt.Fprintf(w, "Total Trending Score: %d\n", best.Combined)
}
