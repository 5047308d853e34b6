// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-spotlight/internal/article"
	"github.com/pdiddy/paper-spotlight/internal/generate"
	"github.com/pdiddy/paper-spotlight/internal/pipeline"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Select the top trending paper and write a post about it",
	Long: `Write runs the selection pipeline and then asks the text generator for a
plain-language summary and three "why it matters" bullets, and prints the
finished post. Requires an OpenAI API key (--api-key, OPENAI_API_KEY, .env,
or .secrets/openai-api-key).`,
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().String("api-key", "", "OpenAI API key (default from OPENAI_API_KEY or .secrets/openai-api-key)")
	writeCmd.Flags().String("model", "", "model identifier (default from generator.model)")

	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Generator.Model = model
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	gen, err := generate.NewOpenAI(cfg.Generator, secretDefault("openai-api-key", apiKey), logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	deps, err := buildDeps(cmd, cfg, out, out)
	if err != nil {
		return err
	}
	deps.Writer = article.NewWriter(gen, cfg.Generator)

	// --now also fixes the footer timestamp.
	clock, _ := clockFromFlag(cmd)

	res, err := pipeline.Run(cmd.Context(), deps)
	if stop, err := handleEmpty(out, err); stop {
		return err
	}

	rule := strings.Repeat("=", 80)
	printSelected(out, res.Best)
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprint(out, res.Post.Text)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Generated %s\n", clock().Format("2006-01-02 15:04:05"))
	return nil
}
