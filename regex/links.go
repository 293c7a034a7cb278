package regex

import (
	"net/url"
	"regexp"

	"github.com/fwojciec/govjobs"
)

// Ensure LinkSelector implements govjobs.LinkSelector at compile time.
var _ govjobs.LinkSelector = (*LinkSelector)(nil)

// anchorPattern captures href and text of anchors whose text has no nested tags.
var anchorPattern = regexp.MustCompile(`(?i)<a[^>]*href=["']([^"']+)["'][^>]*>([^<]+)</a>`)

// LinkSelector finds job links by scanning the index page for anchor tags.
type LinkSelector struct{}

// NewLinkSelector creates a new LinkSelector.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{}
}

// Name returns the selector's identifier.
func (s *LinkSelector) Name() string {
	return "regex"
}

// ExtractLinks scans html for anchors and applies govjobs.FilterLinks.
func (s *LinkSelector) ExtractLinks(html string, baseURL string, limit int) ([]govjobs.JobLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, govjobs.Errorf(govjobs.EINVALID, "invalid base URL: %q", baseURL)
	}

	matches := anchorPattern.FindAllStringSubmatch(html, -1)
	anchors := make([]govjobs.Anchor, 0, len(matches))
	for _, m := range matches {
		anchors = append(anchors, govjobs.Anchor{Href: m[1], Text: m[2]})
	}

	return govjobs.FilterLinks(anchors, baseURL, limit), nil
}
