// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-spotlight/internal/source"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch candidate papers and save them to a snapshot file",
	Long: `Fetch queries the configured metadata source once and writes the raw
records to a YAML snapshot. Replay it later with --input for offline,
repeatable select and write runs. Scores are never stored.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("output", "o", "papers.yaml", "snapshot file to write")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}
	clock, err := clockFromFlag(cmd)
	if err != nil {
		return err
	}

	src, err := source.New(cfg.Source, source.Options{
		Logger: logger,
		Token:  secretDefault("pwc-api-token", ""),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Fetching candidates from %s...\n", src.Name())
	recs, err := src.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching candidates from %s: %w", src.Name(), err)
	}

	if err := source.WriteSnapshot(output, src.Name(), clock(), recs); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %d papers to %s\n", len(recs), output)
	return nil
}
