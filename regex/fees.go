package regex

import (
	"regexp"

	"github.com/fwojciec/govjobs"
)

// Fee bounds in rupees. Numbers outside are some other figure.
const (
	minFee = 0
	maxFee = 5000
)

// feeSection spans from the fee heading to the next heading-like keyword.
var feeSection = regexp.MustCompile(`(?is)Application\s*Fee.*?(Age|Eligibility|Important|How)`)

// feeRules require the trailing "/-" that the site writes after amounts.
var feeRules = []struct {
	re    *regexp.Regexp
	field func(*govjobs.Fees) **int
}{
	{
		regexp.MustCompile(`(?i)General[^0-9]{0,20}(\d{2,4})/-`),
		func(f *govjobs.Fees) **int { return &f.General },
	},
	{
		regexp.MustCompile(`(?i)OBC[^0-9]{0,20}(\d{2,4})/-`),
		func(f *govjobs.Fees) **int { return &f.OBC },
	},
	{
		regexp.MustCompile(`(?i)SC\s*/?\s*ST[^0-9]{0,20}(\d{2,4})/-`),
		func(f *govjobs.Fees) **int { return &f.SCST },
	},
	{
		regexp.MustCompile(`(?i)EWS[^0-9]{0,20}(\d{2,4})/-`),
		func(f *govjobs.Fees) **int { return &f.EWS },
	},
	{
		regexp.MustCompile(`(?i)Female[^0-9]{0,20}(\d{2,4})/-`),
		func(f *govjobs.Fees) **int { return &f.Female },
	},
}

// ExtractFees finds category-wise application fees. The search is limited
// to the "Application Fee" section when the page has one. Amounts outside
// [0, 5000] are dropped.
func ExtractFees(html string) govjobs.Fees {
	html = normalizeSpace(html)
	text := section(html, feeSection)

	var fees govjobs.Fees
	for _, rule := range feeRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if n, ok := atoiInRange(m[1], minFee, maxFee); ok {
			*rule.field(&fees) = &n
		}
	}
	return fees
}
