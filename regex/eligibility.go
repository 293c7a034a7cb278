package regex

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxEligibility       = 2
	maxEligibilityLength = 80
	minEligibilityLength = 6
)

var eligibilityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(10th\s*(?:Class\s*)?Pass(?:ed)?[^.]{0,50})`),
	regexp.MustCompile(`(?i)(12th\s*(?:Class\s*)?Pass(?:ed)?[^.]{0,50})`),
	regexp.MustCompile(`(?i)(Graduate(?:ion)?\s*(?:in\s*Any\s*)?[^.]{0,50})`),
	regexp.MustCompile(`(?i)(B\.?Tech[^.]{0,30})`),
	regexp.MustCompile(`(?i)(ITI[^.]{0,30})`),
	regexp.MustCompile(`(?i)(Diploma[^.]{0,30})`),
}

// ExtractEligibility returns up to two qualification snippets, each running
// from a qualification keyword to the end of its sentence. Snippets come
// back in keyword order without duplicates.
func ExtractEligibility(html string) []string {
	html = normalizeSpace(html)
	snippets := []string{}
	seen := make(map[string]bool)

	for _, re := range eligibilityPatterns {
		m := re.FindStringSubmatch(html)
		if m == nil {
			continue
		}

		text := strings.TrimSpace(m[1])
		if utf8.RuneCountInString(text) < minEligibilityLength {
			continue
		}
		text = truncateRunes(text, maxEligibilityLength)
		if seen[text] {
			continue
		}
		seen[text] = true

		snippets = append(snippets, text)
		if len(snippets) == maxEligibility {
			break
		}
	}

	return snippets
}
