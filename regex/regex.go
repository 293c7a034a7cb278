// Package regex extracts job fields and links from raw HTML with regular
// expressions. Nothing here builds a DOM: pages are searched as text, which is
// what tolerates the inconsistent markup of recruitment-news sites.
package regex

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/govjobs"
)

// Ensure Extractor implements govjobs.Extractor at compile time.
var _ govjobs.Extractor = (*Extractor)(nil)

// Extractor runs every field extractor over a detail page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the fields found in html. Missing fields are left empty.
func (e *Extractor) Extract(html string) *govjobs.Details {
	return &govjobs.Details{
		Dates:       ExtractDates(html),
		Fees:        ExtractFees(html),
		AgeLimit:    ExtractAgeLimit(html),
		Vacancies:   ExtractVacancies(html),
		Eligibility: ExtractEligibility(html),
	}
}

// normalizeSpace turns non-ASCII whitespace such as U+00A0 into plain
// spaces. RE2 \s matches ASCII whitespace only, and job tables are full of
// non-breaking spaces.
func normalizeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII && unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

// atoiInRange parses s and reports whether it lies in [lo, hi].
func atoiInRange(s string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}

// section returns html from the start of the first match of re up to, but
// not including, the terminator captured by re's first group. It returns
// the whole page when re does not match.
func section(html string, re *regexp.Regexp) string {
	loc := re.FindStringSubmatchIndex(html)
	if loc == nil {
		return html
	}
	return html[loc[0]:loc[2]]
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
