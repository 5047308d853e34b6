// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"strings"

	"github.com/pdiddy/paper-spotlight/pkg/types"
)

// Validator scores the independent signals that corroborate a trending
// paper: a preprint, an implementation, and any venue at all.
type Validator struct {
	marker        string
	preprintBonus int
	codeBonus     int
	venueBonus    int
}

// NewValidator builds a Validator from cfg.
func NewValidator(cfg types.RankingConfig) *Validator {
	return &Validator{
		marker:        cfg.PreprintMarker,
		preprintBonus: cfg.PreprintBonus,
		codeBonus:     cfg.CodeBonus,
		venueBonus:    cfg.VenueBonus,
	}
}

// Validate returns the validation breakdown for rec. It does not modify rec.
//
// A star count of zero counts as "no code", even though an unstarred
// repository may exist. The source does not tell the two apart.
func (v *Validator) Validate(rec types.PaperRecord) types.ValidationBreakdown {
	var b types.ValidationBreakdown

	if v.marker != "" && strings.Contains(rec.URLAbs, v.marker) {
		b.PreprintURL = rec.URLAbs
		b.Total += v.preprintBonus
	}
	if rec.GitHubStars != 0 {
		b.HasCode = true
		b.Total += v.codeBonus
	}
	if strings.TrimSpace(rec.Conference) != "" {
		b.Total += v.venueBonus
	}
	return b
}
