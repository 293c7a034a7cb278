package govjobs

import "strings"

// categoryRules is checked in order; the first rule with a keyword found
// in the lower-cased title decides the category.
var categoryRules = []struct {
	keywords []string
	category Category
}{
	{[]string{"ssc", "staff selection"}, CategorySSC},
	{[]string{"upsc", "ias", "ips", "nda", "cds"}, CategoryUPSC},
	{[]string{"ibps", "rbi", "sbi", "bank", "nabard", "lic", "insurance"}, CategoryBanking},
	{[]string{"railway", "rrb", "ntpc"}, CategoryRailway},
	{[]string{"army", "navy", "air force", "defence", "bsf", "crpf", "cisf", "agniveer"}, CategoryDefence},
	{[]string{"rssb", "rpsc", "rajasthan"}, CategoryRajasthan},
	{[]string{"uppsc", "upsssc", "uttar pradesh"}, CategoryUP},
	{[]string{"bpsc", "bihar"}, CategoryBihar},
	{[]string{"mppsc", "mpesb", "madhya pradesh"}, CategoryMP},
	{[]string{"police", "constable"}, CategoryPolice},
}

// ClassifyType derives the notice type from a link title.
func ClassifyType(title string) JobType {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "admit"):
		return TypeAdmitCard
	case strings.Contains(lower, "result"):
		return TypeResult
	case strings.Contains(lower, "answer"):
		return TypeAnswerKey
	default:
		return TypeRecruitment
	}
}

// ClassifyCategory derives the recruiting body from a link title.
// Keywords are plain substrings, so short ones like "ias" also match inside
// longer words. Titles matching nothing are CategoryCentralGovt.
func ClassifyCategory(title string) Category {
	lower := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryCentralGovt
}
