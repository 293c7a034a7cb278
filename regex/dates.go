package regex

import (
	"regexp"

	"github.com/fwojciec/govjobs"
)

// dateRules are tried in order. A field set by an earlier rule is never
// overwritten, so the labelled "Last Date ... Apply" wins over a bare
// "Last Date" that may belong to fee payment or correction windows.
var dateRules = []struct {
	re    *regexp.Regexp
	field func(*govjobs.Dates) *string
}{
	{
		regexp.MustCompile(`(?i)Application\s*Begin[^0-9]*(\d{2}/\d{2}/\d{4})`),
		func(d *govjobs.Dates) *string { return &d.ApplicationBegin },
	},
	{
		regexp.MustCompile(`(?i)Last\s*Date[^0-9]*Apply[^0-9]*(\d{2}/\d{2}/\d{4})`),
		func(d *govjobs.Dates) *string { return &d.LastDate },
	},
	{
		regexp.MustCompile(`(?i)Last\s*Date[^0-9]*(\d{2}/\d{2}/\d{4})`),
		func(d *govjobs.Dates) *string { return &d.LastDate },
	},
	{
		regexp.MustCompile(`(?i)Exam\s*Date[^0-9]*(\d{2}/\d{2}/\d{4})`),
		func(d *govjobs.Dates) *string { return &d.ExamDate },
	},
	{
		regexp.MustCompile(`(?i)Admit\s*Card[^0-9]*(\d{2}/\d{2}/\d{4})`),
		func(d *govjobs.Dates) *string { return &d.AdmitCard },
	},
}

// ExtractDates finds the important dates of a posting. Each date is the
// first DD/MM/YYYY token following its label with no digits in between.
func ExtractDates(html string) govjobs.Dates {
	html = normalizeSpace(html)
	var dates govjobs.Dates
	for _, rule := range dateRules {
		field := rule.field(&dates)
		if *field != "" {
			continue
		}
		if m := rule.re.FindStringSubmatch(html); m != nil {
			*field = m[1]
		}
	}
	return dates
}
