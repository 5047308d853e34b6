// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-spotlight/internal/httputil"
	"github.com/pdiddy/paper-spotlight/pkg/types"
)

// pwcAPIBase is the Papers with Code papers endpoint. Declared as a var so
// tests can substitute an httptest server.
var pwcAPIBase = "https://paperswithcode.com/api/v1/papers/"

const pwcService = "Papers with Code API"

// PapersWithCode lists papers from the Papers with Code API ordered by
// trending.
type PapersWithCode struct {
	Client *http.Client
	Config types.SourceConfig
	Token  string
	Logger *slog.Logger
}

// Name returns the source identifier.
func (s *PapersWithCode) Name() string { return string(types.SourcePapersWithCode) }

// Fetch requests one page of trending papers.
func (s *PapersWithCode) Fetch(ctx context.Context) ([]types.PaperRecord, error) {
	base := pwcAPIBase
	if s.Config.Endpoint != "" {
		base = s.Config.Endpoint
	}

	params := url.Values{}
	params.Set("order", "trending")
	params.Set("per_page", strconv.Itoa(maxResultsOr(s.Config, 25)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.Config.UserAgent != "" {
		req.Header.Set("User-Agent", s.Config.UserAgent)
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Token "+s.Token)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, retryPolicy(s.Logger))
	if err != nil {
		return nil, httputil.Transport(pwcService, err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(pwcService, resp); err != nil {
		return nil, err
	}

	var page pwcPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", pwcService, err)
	}

	records := make([]types.PaperRecord, 0, len(page.Results))
	for _, p := range page.Results {
		records = append(records, p.record())
	}
	return records, nil
}

// Papers with Code JSON structures. Nullable fields are pointers so that
// null and absent both resolve to the zero value.
type pwcPage struct {
	Count   int        `json:"count"`
	Results []pwcPaper `json:"results"`
}

type pwcPaper struct {
	ID          string   `json:"id"`
	Title       *string  `json:"title"`
	Abstract    *string  `json:"abstract"`
	URLAbs      *string  `json:"url_abs"`
	URLPDF      *string  `json:"url_pdf"`
	Published   *string  `json:"published"`
	GitHubStars *int     `json:"github_stars"`
	Conference  *string  `json:"conference"`
	Authors     []string `json:"authors"`
}

func (p pwcPaper) record() types.PaperRecord {
	r := types.PaperRecord{
		ID:         p.ID,
		Title:      plainText(deref(p.Title)),
		Abstract:   plainText(deref(p.Abstract)),
		URLAbs:     deref(p.URLAbs),
		URLPDF:     deref(p.URLPDF),
		Published:  deref(p.Published),
		Conference: deref(p.Conference),
		Source:     string(types.SourcePapersWithCode),
	}
	if p.GitHubStars != nil {
		r.GitHubStars = *p.GitHubStars
	}
	for _, a := range p.Authors {
		if a = strings.TrimSpace(a); a != "" {
			r.Authors = append(r.Authors, a)
		}
	}
	return r
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
