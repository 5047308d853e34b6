// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"math"
	"strings"

	"github.com/pdiddy/paper-spotlight/pkg/types"
)

// Scorer computes the trending score of a paper from popularity, recency,
// and venue prestige.
type Scorer struct {
	starWeight    int
	tiers         []types.RecencyTier
	prestigeBonus int
	venues        []string // upper-cased, blanks removed
	now           Clock
}

// NewScorer builds a Scorer from cfg. A nil clock means time.Now.
func NewScorer(cfg types.RankingConfig, clock Clock) *Scorer {
	var venues []string
	for _, v := range cfg.Venues {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" {
			venues = append(venues, v)
		}
	}
	return &Scorer{
		starWeight:    cfg.StarWeight,
		tiers:         cfg.RecencyTiers,
		prestigeBonus: cfg.PrestigeBonus,
		venues:        venues,
		now:           clockOrNow(clock),
	}
}

// Score returns the trending breakdown for rec. It does not modify rec.
func (s *Scorer) Score(rec types.PaperRecord) types.ScoreBreakdown {
	b := types.ScoreBreakdown{
		Popularity: s.popularity(rec.GitHubStars),
		Recency:    s.recency(rec.Published),
		Prestige:   s.prestige(rec.Conference),
	}
	b.Total = b.Popularity + b.Recency + b.Prestige
	return b
}

// maxPopularity caps the star component so that adding the bonuses and the
// validation total cannot overflow int.
const maxPopularity = math.MaxInt / 8

func (s *Scorer) popularity(stars int) int {
	stars = max(stars, 0)
	weight := max(s.starWeight, 0)
	if weight > 0 && stars > maxPopularity/weight {
		return maxPopularity
	}
	return stars * weight
}

// recency awards the bonus of the first tier whose age limit covers the
// paper. Future-dated papers have a negative age and land in the first tier.
func (s *Scorer) recency(published string) int {
	d := ParseDate(published)
	if !d.OK() {
		return 0
	}
	age := ageInDays(s.now(), d.Time)
	for _, tier := range s.tiers {
		if age <= tier.MaxAgeDays {
			return tier.Bonus
		}
	}
	return 0
}

func (s *Scorer) prestige(conference string) int {
	if IsTopVenue(conference, s.venues) {
		return s.prestigeBonus
	}
	return 0
}

// IsTopVenue reports whether conference names any of venues. Matching is a
// case-insensitive substring test on the trimmed conference.
func IsTopVenue(conference string, venues []string) bool {
	c := strings.ToUpper(strings.TrimSpace(conference))
	if c == "" {
		return false
	}
	for _, v := range venues {
		v = strings.ToUpper(v)
		if v != "" && strings.Contains(c, v) {
			return true
		}
	}
	return false
}
