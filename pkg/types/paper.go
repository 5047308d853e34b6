// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperRecord holds the metadata a source returned for one candidate paper.
// Source decoders resolve defaults once: absent or null numbers become 0 and
// absent text becomes "". The pipeline only fills the enrichment slots
// (Trending, Validation); source fields are never overwritten.
type PaperRecord struct {
	// ID is the source's identifier for the paper (slug, arXiv ID).
	ID string `json:"id" yaml:"id"`

	// Title is the paper title. It is the only field every source guarantees.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// URLAbs is the abstract page URL; for preprints it points at arxiv.org.
	URLAbs string `json:"url_abs,omitempty" yaml:"url_abs,omitempty"`

	// URLPDF is the direct PDF URL, when known.
	URLPDF string `json:"url_pdf,omitempty" yaml:"url_pdf,omitempty"`

	// Published is the publication date exactly as the source encoded it
	// (RFC 3339 timestamp or YYYY-MM-DD). Empty when unknown.
	Published string `json:"published,omitempty" yaml:"published,omitempty"`

	// GitHubStars is the star count of the paper's implementation; 0 when
	// the source reported none.
	GitHubStars int `json:"github_stars" yaml:"github_stars"`

	// Conference is the free-text venue, e.g. "NeurIPS 2025".
	Conference string `json:"conference,omitempty" yaml:"conference,omitempty"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Source identifies which backend produced the record (e.g. "pwc", "arxiv").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Trending is the trending-score enrichment. Nil until scored.
	Trending *ScoreBreakdown `json:"trending_analysis,omitempty" yaml:"trending_analysis,omitempty"`

	// Validation is the external-validation enrichment. Nil until validated.
	Validation *ValidationBreakdown `json:"external_validation,omitempty" yaml:"external_validation,omitempty"`
}

// ScoreBreakdown records how the trending score of one paper was built.
type ScoreBreakdown struct {
	// Popularity is the star-derived component (stars times the star weight).
	Popularity int `json:"popularity" yaml:"popularity"`

	// Recency is the age-tier bonus.
	Recency int `json:"recency" yaml:"recency"`

	// Prestige is the top-venue bonus.
	Prestige int `json:"prestige" yaml:"prestige"`

	// Total is Popularity + Recency + Prestige.
	Total int `json:"total" yaml:"total"`
}

// ValidationBreakdown records the independent signals that corroborate a
// paper's trending status.
type ValidationBreakdown struct {
	// PreprintURL is the matched preprint URL, empty when none matched.
	PreprintURL string `json:"preprint_url,omitempty" yaml:"preprint_url,omitempty"`

	// HasCode is true when the record reports a nonzero star count.
	HasCode bool `json:"has_code" yaml:"has_code"`

	// Total is the sum of the preprint, code, and venue bonuses.
	Total int `json:"total" yaml:"total"`
}
