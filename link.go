package govjobs

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultLinkLimit is the maximum number of job links taken from an index page.
const DefaultLinkLimit = 25

// minTitleLength is the shortest anchor text accepted as a job title, in runes.
const minTitleLength = 15

// JobLink is a candidate job posting found on the index page.
type JobLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Anchor is a raw hyperlink as it appears in markup.
type Anchor struct {
	Href string
	Text string
}

// LinkSelector finds job links in index-page HTML.
type LinkSelector interface {
	// ExtractLinks returns at most limit job links in document order,
	// deduplicated by normalized URL. Relative hrefs are resolved against baseURL.
	ExtractLinks(html string, baseURL string, limit int) ([]JobLink, error)

	// Name returns the selector's identifier (e.g., "regex", "goquery").
	Name() string
}

var (
	// Navigation labels that are never postings, compared against the whole title.
	navigationTitles = map[string]bool{
		"latest jobs": true,
		"admit card":  true,
		"answer key":  true,
		"result":      true,
		"syllabus":    true,
		"home":        true,
		"contact":     true,
		"about":       true,
		"more":        true,
		"click here":  true,
		"read more":   true,
	}

	// Substrings of social and legal link targets.
	skipURLParts = []string{
		"facebook", "twitter", "youtube", "instagram", "whatsapp",
		"privacy", "disclaimer", "contact", "about", "#",
	}

	// A title must mention at least one of these to count as a posting.
	jobWords = []string{
		"recruitment", "vacancy", "admit", "result", "online",
		"form", "notification", "exam", "post",
	}

	yearToken = regexp.MustCompile(`20\d{2}`)

	binaryExtensions = []string{".pdf", ".jpg", ".png"}
)

// NormalizeURL turns a raw href into an absolute, fetchable http(s) URL.
// Stray tokens after embedded whitespace are dropped, links to PDFs and
// images are rejected, and relative references are resolved against base.
// The bool result is false when the href cannot be used.
func NormalizeURL(raw, base string) (string, bool) {
	s := strings.TrimSpace(raw)
	if fields := strings.Fields(s); len(fields) > 1 {
		s = fields[0]
	}
	if s == "" {
		return "", false
	}

	lower := strings.ToLower(s)
	for _, ext := range binaryExtensions {
		if strings.HasSuffix(lower, ext) {
			return "", false
		}
	}

	if !isAbsoluteHTTP(s) {
		baseURL, err := url.Parse(base)
		if err != nil {
			return "", false
		}
		ref, err := url.Parse(s)
		if err != nil {
			return "", false
		}
		s = baseURL.ResolveReference(ref).String()
	}

	if !isAbsoluteHTTP(s) {
		return "", false
	}
	return s, true
}

// isAbsoluteHTTP reports whether s is an http(s) URL with a host.
func isAbsoluteHTTP(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// FilterLinks applies the job-link heuristics to raw anchors and returns at
// most limit links in first-seen order. A limit <= 0 means DefaultLinkLimit.
func FilterLinks(anchors []Anchor, base string, limit int) []JobLink {
	if limit <= 0 {
		limit = DefaultLinkLimit
	}

	links := make([]JobLink, 0, min(len(anchors), limit))
	seen := make(map[string]bool)

	for _, a := range anchors {
		title := strings.TrimSpace(a.Text)
		if !IsJobTitle(title) {
			continue
		}
		if isSkippedURL(a.Href) {
			continue
		}

		u, ok := NormalizeURL(a.Href, base)
		if !ok || seen[u] {
			continue
		}
		seen[u] = true

		links = append(links, JobLink{URL: u, Title: title})
		if len(links) == limit {
			break
		}
	}

	return links
}

// IsJobTitle reports whether trimmed anchor text looks like a job posting
// rather than navigation chrome.
func IsJobTitle(title string) bool {
	if utf8.RuneCountInString(title) < minTitleLength {
		return false
	}

	lower := strings.ToLower(title)
	if navigationTitles[lower] {
		return false
	}

	for _, w := range jobWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return yearToken.MatchString(lower)
}

func isSkippedURL(href string) bool {
	lower := strings.ToLower(href)
	for _, part := range skipURLParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
