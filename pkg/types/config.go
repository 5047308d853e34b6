// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-spotlight/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SourceConfig holds settings for the metadata source.
type SourceConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Kind selects the source: pwc, arxiv, or file.
	Kind SourceKind `json:"kind" yaml:"kind" mapstructure:"kind"`

	// Endpoint overrides the source's API URL. Empty uses the built-in default.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" mapstructure:"endpoint"`

	// Categories lists arXiv categories queried by the arxiv source.
	Categories []string `json:"categories" yaml:"categories" mapstructure:"categories"`

	// MaxResults bounds how many records one fetch returns (default 25).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// File is the snapshot path read by the file source.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// RecencyTier awards Bonus to papers at most MaxAgeDays old.
type RecencyTier struct {
	MaxAgeDays int `json:"max_age_days" yaml:"max_age_days" mapstructure:"max_age_days"`
	Bonus      int `json:"bonus" yaml:"bonus" mapstructure:"bonus"`
}

// RankingConfig holds the thresholds and weights of the scoring pipeline.
type RankingConfig struct {
	// CutoffYear is the minimum publication year for the recency filter.
	// Zero means the clock's current year.
	CutoffYear int `json:"cutoff_year" yaml:"cutoff_year" mapstructure:"cutoff_year"`

	// FallbackSize is how many unfiltered records are kept when no record
	// passes the recency filter (default 10).
	FallbackSize int `json:"fallback_size" yaml:"fallback_size" mapstructure:"fallback_size"`

	// StarWeight multiplies the star count into the popularity component.
	StarWeight int `json:"star_weight" yaml:"star_weight" mapstructure:"star_weight"`

	// RecencyTiers must be ordered by ascending MaxAgeDays. Papers older than
	// the last tier get no recency bonus.
	RecencyTiers []RecencyTier `json:"recency_tiers" yaml:"recency_tiers" mapstructure:"recency_tiers"`

	// PrestigeBonus is awarded when the conference names an allow-listed venue.
	PrestigeBonus int `json:"prestige_bonus" yaml:"prestige_bonus" mapstructure:"prestige_bonus"`

	// Venues is the prestige allow-list, matched case-insensitively as substrings.
	Venues []string `json:"venues" yaml:"venues" mapstructure:"venues"`

	// PreprintMarker is the domain that marks a preprint URL (e.g. "arxiv.org").
	PreprintMarker string `json:"preprint_marker" yaml:"preprint_marker" mapstructure:"preprint_marker"`

	PreprintBonus int `json:"preprint_bonus" yaml:"preprint_bonus" mapstructure:"preprint_bonus"`
	CodeBonus     int `json:"code_bonus" yaml:"code_bonus" mapstructure:"code_bonus"`
	VenueBonus    int `json:"venue_bonus" yaml:"venue_bonus" mapstructure:"venue_bonus"`

	// ReportSize is how many candidates the selection report shows (default 3).
	ReportSize int `json:"report_size" yaml:"report_size" mapstructure:"report_size"`

	// TitleWidth bounds the title column of the report, in display cells.
	TitleWidth int `json:"title_width" yaml:"title_width" mapstructure:"title_width"`
}

// GeneratorConfig holds settings for the text-generation API.
type GeneratorConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Model is the model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// Endpoint overrides the chat-completions URL.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" mapstructure:"endpoint"`

	// MaxRetries is the number of retries on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// WordsLimit caps the length of the generated summary, in words.
	WordsLimit int `json:"words_limit" yaml:"words_limit" mapstructure:"words_limit"`

	// MaxTokens caps each generated completion.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`

	SummaryTemperature float64 `json:"summary_temperature" yaml:"summary_temperature" mapstructure:"summary_temperature"`
	HotTakeTemperature float64 `json:"hot_take_temperature" yaml:"hot_take_temperature" mapstructure:"hot_take_temperature"`
}

// Config groups all stage configurations for the pipeline.
type Config struct {
	Source    SourceConfig    `json:"source" yaml:"source" mapstructure:"source"`
	Ranking   RankingConfig   `json:"ranking" yaml:"ranking" mapstructure:"ranking"`
	Generator GeneratorConfig `json:"generator" yaml:"generator" mapstructure:"generator"`
}

// DefaultVenues is the top-tier venue allow-list used for the prestige bonus.
var DefaultVenues = []string{"ICLR", "ICML", "NeurIPS", "AAAI", "IJCAI", "ACL", "EMNLP"}

// DefaultRanking returns the scoring thresholds and weights the pipeline
// ships with.
func DefaultRanking() RankingConfig {
	return RankingConfig{
		FallbackSize: 10,
		StarWeight:   10,
		RecencyTiers: []RecencyTier{
			{MaxAgeDays: 7, Bonus: 50},
			{MaxAgeDays: 30, Bonus: 25},
			{MaxAgeDays: 90, Bonus: 10},
		},
		PrestigeBonus:  20,
		Venues:         append([]string(nil), DefaultVenues...),
		PreprintMarker: "arxiv.org",
		PreprintBonus:  10,
		CodeBonus:      15,
		VenueBonus:     5,
		ReportSize:     3,
		TitleWidth:     60,
	}
}

// DefaultConfig returns a complete configuration with every default filled in.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "paper-spotlight/0.1",
			},
			Kind:       SourcePapersWithCode,
			Categories: []string{"cs.LG", "cs.AI", "cs.CL", "cs.CV"},
			MaxResults: 25,
		},
		Ranking: DefaultRanking(),
		Generator: GeneratorConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   60 * time.Second,
				UserAgent: "paper-spotlight/0.1",
			},
			Model:              "gpt-4o-mini",
			MaxRetries:         3,
			WordsLimit:         250,
			MaxTokens:          512,
			SummaryTemperature: 0.65,
			HotTakeTemperature: 0.8,
		},
	}
}
