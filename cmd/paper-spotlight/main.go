// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-spotlight CLI.
// Subcommands: select (rank candidates), write (rank and write the post),
// fetch (save a candidate snapshot), config, and version.
// See docs/ARCHITECTURE.md § Pipeline Interface.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-spotlight/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys resolved at startup from the environment,
// .env, and .secrets/.
var loadedSecrets *secrets.Store

// logger receives diagnostics on stderr; --verbose lowers the level to debug.
var logger = slog.New(slog.DiscardHandler)

// secretDefault returns fallback if set, otherwise the stored secret for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if loadedSecrets == nil {
		return ""
	}
	v, _ := loadedSecrets.Get(key)
	return v
}

// rootCmd is the base command for the paper-spotlight CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-spotlight",
	Short: "Pick one trending ML paper and write it up",
	Long: `paper-spotlight fetches candidate machine-learning papers, keeps the recent
ones, ranks them by a deterministic trending score plus external validation,
and writes a short promotional post about the winner.

select ranks candidates and prints the top three; write also generates the
post; fetch saves the raw candidates to a snapshot for offline runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		s, err := secrets.Load(".secrets/", ".env")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if keys := s.Keys(); len(keys) > 0 {
			logger.Debug("loaded secrets", slog.Any("keys", keys))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-spotlight.yaml or ~/.config/paper-spotlight/paper-spotlight.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug diagnostics to stderr")
	rootCmd.PersistentFlags().String("now", "", "fix the clock (YYYY-MM-DD or RFC 3339) for reproducible runs")
	rootCmd.PersistentFlags().String("source", "", "metadata source: pwc, arxiv, or file")
	rootCmd.PersistentFlags().String("input", "", "read candidates from a snapshot file (implies --source file)")
	rootCmd.PersistentFlags().Int("cutoff-year", 0, "minimum publication year (default: current year)")

	viper.BindPFlag("source.kind", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("source.file", rootCmd.PersistentFlags().Lookup("input"))
	viper.BindPFlag("ranking.cutoff_year", rootCmd.PersistentFlags().Lookup("cutoff-year"))
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-spotlight")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-spotlight"))
		}
	}

	viper.SetEnvPrefix("PAPER_SPOTLIGHT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
