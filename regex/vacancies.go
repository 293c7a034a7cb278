package regex

import (
	"regexp"

	"github.com/fwojciec/govjobs"
)

const (
	minVacancies = 1
	maxVacancies = 500000
)

// vacancyPatterns go from most to least specific.
var vacancyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Total\s*:?\s*(\d{1,6})\s*Post`),
	regexp.MustCompile(`(?i)Vacancy[^0-9]*Total[^0-9]*(\d{1,6})`),
	regexp.MustCompile(`(?i)(\d{1,6})\s*(?:Posts?|Vacancies)`),
}

// ExtractVacancies finds the total number of posts. Only the first match of
// each pattern is considered; an out-of-range count falls through to the
// next pattern.
func ExtractVacancies(html string) govjobs.Vacancies {
	html = normalizeSpace(html)
	for _, re := range vacancyPatterns {
		m := re.FindStringSubmatch(html)
		if m == nil {
			continue
		}
		if n, ok := atoiInRange(m[1], minVacancies, maxVacancies); ok {
			return govjobs.Vacancies{Total: &n}
		}
	}
	return govjobs.Vacancies{}
}
