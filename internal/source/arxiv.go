// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/paper-spotlight/internal/httputil"
	"github.com/pdiddy/paper-spotlight/pkg/types"
)

// arxivAPIBase is the arXiv query endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

const arxivService = "arXiv API"

// Arxiv lists the newest submissions in the configured categories. arXiv
// has no star counts, so every record reports zero stars; the journal
// reference, when the authors supplied one, becomes the conference.
type Arxiv struct {
	Client *http.Client
	Config types.SourceConfig
	Logger *slog.Logger
}

// Name returns the source identifier.
func (s *Arxiv) Name() string { return string(types.SourceArxiv) }

// Fetch queries arXiv and parses the Atom response.
func (s *Arxiv) Fetch(ctx context.Context) ([]types.PaperRecord, error) {
	q := buildArxivQuery(s.Config.Categories)
	if q == "" {
		return nil, fmt.Errorf("arxiv source: no categories configured")
	}

	base := arxivAPIBase
	if s.Config.Endpoint != "" {
		base = s.Config.Endpoint
	}

	params := url.Values{}
	params.Set("search_query", q)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResultsOr(s.Config, 25)))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if s.Config.UserAgent != "" {
		req.Header.Set("User-Agent", s.Config.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, retryPolicy(s.Logger))
	if err != nil {
		return nil, httputil.Transport(arxivService, err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(arxivService, resp); err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", arxivService, err)
	}

	records := make([]types.PaperRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		if r, ok := arxivRecord(item); ok {
			records = append(records, r)
		}
	}
	return records, nil
}

func arxivRecord(item *gofeed.Item) (types.PaperRecord, bool) {
	id := extractArxivID(item.GUID)
	if id == "" {
		id = extractArxivID(item.Link)
	}
	if id == "" {
		return types.PaperRecord{}, false
	}

	r := types.PaperRecord{
		ID:         id,
		Title:      plainText(item.Title),
		Abstract:   plainText(item.Description),
		URLAbs:     item.Link,
		Published:  strings.TrimSpace(item.Published),
		Conference: arxivExtension(item, "journal_ref"),
		Source:     string(types.SourceArxiv),
	}
	if r.URLAbs == "" {
		r.URLAbs = "https://arxiv.org/abs/" + id
	}
	r.URLPDF = arxivPDFURL(r.URLAbs, id)
	for _, a := range item.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			r.Authors = append(r.Authors, strings.TrimSpace(a.Name))
		}
	}
	return r, true
}

// arxivPDFURL derives the PDF link from the abstract page, keeping its
// version suffix. The feed's own PDF link is rel="related", which gofeed
// does not surface on Item.Links.
func arxivPDFURL(absURL, id string) string {
	if strings.Contains(absURL, "/abs/") {
		return strings.Replace(absURL, "/abs/", "/pdf/", 1)
	}
	return "https://arxiv.org/pdf/" + id
}

// arxivExtension returns the first value of an arxiv: namespaced element.
func arxivExtension(item *gofeed.Item, name string) string {
	vals := item.Extensions["arxiv"][name]
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0].Value)
}

// buildArxivQuery ORs the categories into a search_query value
// ("cat:cs.LG OR cat:cs.AI").
func buildArxivQuery(categories []string) string {
	var parts []string
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, "cat:"+c)
		}
	}
	return strings.Join(parts, " OR ")
}

// extractArxivID pulls the arXiv ID from an entry URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" -> "2301.07041").
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := idURL[idx+len(prefix):]

	// Strip version suffix (e.g. "v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
