package regex

import (
	"regexp"
	"strconv"

	"github.com/fwojciec/govjobs"
)

var (
	ageSection = regexp.MustCompile(`(?is)Age\s*Limit.*?(Application|Eligibility|How|Important)`)
	minAge     = regexp.MustCompile(`(?i)Minimum\s*Age[^0-9]*(\d{2})\s*Years?`)
	maxAge     = regexp.MustCompile(`(?i)Maximum\s*Age[^0-9]*(\d{2})\s*Years?`)
	ageAsOn    = regexp.MustCompile(`(?i)as\s*on\s*(\d{2}/\d{2}/\d{4})`)
)

// ExtractAgeLimit finds the minimum and maximum age and the date they are
// counted from. Minimum and maximum are matched independently.
func ExtractAgeLimit(html string) govjobs.AgeLimit {
	html = normalizeSpace(html)
	text := section(html, ageSection)

	var age govjobs.AgeLimit
	if m := minAge.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			age.Min = &n
		}
	}
	if m := maxAge.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			age.Max = &n
		}
	}
	if m := ageAsOn.FindStringSubmatch(text); m != nil {
		age.AsOn = m[1]
	}
	return age
}
