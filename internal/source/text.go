// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// plainText strips HTML markup that some feeds leave in titles and
// abstracts, and collapses runs of whitespace to single spaces.
func plainText(s string) string {
	if strings.ContainsAny(s, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}
