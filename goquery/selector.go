// Package goquery provides a govjobs.LinkSelector backed by a parsed DOM.
// Unlike the regex selector it sees the text of anchors that wrap other
// elements.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/govjobs"
)

// Ensure LinkSelector implements govjobs.LinkSelector at compile time.
var _ govjobs.LinkSelector = (*LinkSelector)(nil)

// LinkSelector extracts job links from every anchor in the document.
type LinkSelector struct{}

// NewLinkSelector creates a new LinkSelector.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{}
}

// Name returns the selector's identifier.
func (s *LinkSelector) Name() string {
	return "goquery"
}

// ExtractLinks parses HTML and returns at most limit job links in document
// order. Anchor text is the combined text of all descendants.
func (s *LinkSelector) ExtractLinks(html string, baseURL string, limit int) ([]govjobs.JobLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, govjobs.Errorf(govjobs.EINVALID, "invalid base URL: %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, govjobs.Errorf(govjobs.EINVALID, "failed to parse HTML: %v", err)
	}

	var anchors []govjobs.Anchor
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		anchors = append(anchors, govjobs.Anchor{Href: href, Text: sel.Text()})
	})

	return govjobs.FilterLinks(anchors, baseURL, limit), nil
}
