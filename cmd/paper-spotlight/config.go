// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-spotlight/internal/rank"
	"github.com/pdiddy/paper-spotlight/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the configuration after merging defaults, the config file,
PAPER_SPOTLIGHT_* environment variables, and flags. Secrets are never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := commandConfig(cmd)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// setDefaults registers every key of types.DefaultConfig so that config
// files and PAPER_SPOTLIGHT_* variables can override any of them.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()

	v.SetDefault("source.kind", string(d.Source.Kind))
	v.SetDefault("source.endpoint", d.Source.Endpoint)
	v.SetDefault("source.categories", d.Source.Categories)
	v.SetDefault("source.max_results", d.Source.MaxResults)
	v.SetDefault("source.file", d.Source.File)
	v.SetDefault("source.timeout", d.Source.Timeout)
	v.SetDefault("source.user_agent", d.Source.UserAgent)

	v.SetDefault("ranking.cutoff_year", d.Ranking.CutoffYear)
	v.SetDefault("ranking.fallback_size", d.Ranking.FallbackSize)
	v.SetDefault("ranking.star_weight", d.Ranking.StarWeight)
	v.SetDefault("ranking.recency_tiers", d.Ranking.RecencyTiers)
	v.SetDefault("ranking.prestige_bonus", d.Ranking.PrestigeBonus)
	v.SetDefault("ranking.venues", d.Ranking.Venues)
	v.SetDefault("ranking.preprint_marker", d.Ranking.PreprintMarker)
	v.SetDefault("ranking.preprint_bonus", d.Ranking.PreprintBonus)
	v.SetDefault("ranking.code_bonus", d.Ranking.CodeBonus)
	v.SetDefault("ranking.venue_bonus", d.Ranking.VenueBonus)
	v.SetDefault("ranking.report_size", d.Ranking.ReportSize)
	v.SetDefault("ranking.title_width", d.Ranking.TitleWidth)

	v.SetDefault("generator.model", d.Generator.Model)
	v.SetDefault("generator.endpoint", d.Generator.Endpoint)
	v.SetDefault("generator.timeout", d.Generator.Timeout)
	v.SetDefault("generator.user_agent", d.Generator.UserAgent)
	v.SetDefault("generator.max_retries", d.Generator.MaxRetries)
	v.SetDefault("generator.words_limit", d.Generator.WordsLimit)
	v.SetDefault("generator.max_tokens", d.Generator.MaxTokens)
	v.SetDefault("generator.summary_temperature", d.Generator.SummaryTemperature)
	v.SetDefault("generator.hot_take_temperature", d.Generator.HotTakeTemperature)
}

// loadConfig decodes the merged settings into a types.Config. Durations
// accept Go syntax ("45s"); lists accept comma-separated strings so they can
// be set from a single environment variable.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}

	if !cfg.Source.Kind.Valid() {
		return cfg, fmt.Errorf("invalid source.kind %q (want pwc, arxiv, or file)", cfg.Source.Kind)
	}
	return cfg, nil
}

// commandConfig loads the configuration for cmd. --input selects the file
// source regardless of source.kind.
func commandConfig(cmd *cobra.Command) (types.Config, error) {
	if cmd.Flags().Changed("input") {
		viper.Set("source.kind", string(types.SourceFile))
	}
	return loadConfig(viper.GetViper())
}

// clockFromFlag returns a fixed clock when --now is set, else the wall clock.
func clockFromFlag(cmd *cobra.Command) (rank.Clock, error) {
	raw, _ := cmd.Flags().GetString("now")
	if raw == "" {
		return time.Now, nil
	}
	d := rank.ParseDate(raw)
	if !d.OK() {
		return nil, fmt.Errorf("invalid --now %q: want YYYY-MM-DD or RFC 3339", raw)
	}
	return rank.FixedClock(d.Time), nil
}
