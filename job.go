package govjobs

import (
	"context"
	"time"
)

// JobType labels what kind of notice a posting is.
type JobType string

// Job types, derived from title keywords.
const (
	TypeAdmitCard   JobType = "Admit Card"
	TypeResult      JobType = "Result"
	TypeAnswerKey   JobType = "Answer Key"
	TypeRecruitment JobType = "Recruitment"
)

// Category labels the recruiting body behind a posting.
type Category string

// Categories, derived from title keywords.
const (
	CategorySSC         Category = "SSC"
	CategoryUPSC        Category = "UPSC"
	CategoryBanking     Category = "Banking"
	CategoryRailway     Category = "Railway"
	CategoryDefence     Category = "Defence"
	CategoryRajasthan   Category = "Rajasthan"
	CategoryUP          Category = "UP"
	CategoryBihar       Category = "Bihar"
	CategoryMP          Category = "MP"
	CategoryPolice      Category = "Police"
	CategoryCentralGovt Category = "Central Govt"
)

// Dates holds the important dates found on a detail page, as DD/MM/YYYY text.
// Empty fields were not found.
type Dates struct {
	ApplicationBegin string `json:"application_begin,omitempty"`
	LastDate         string `json:"last_date,omitempty"`
	ExamDate         string `json:"exam_date,omitempty"`
	AdmitCard        string `json:"admit_card,omitempty"`
}

// Fees holds category-wise application fees in rupees.
// A nil field was not found; zero is a valid fee.
type Fees struct {
	General *int `json:"general,omitempty"`
	OBC     *int `json:"obc,omitempty"`
	SCST    *int `json:"sc_st,omitempty"`
	EWS     *int `json:"ews,omitempty"`
	Female  *int `json:"female,omitempty"`
}

// AgeLimit holds the age bounds of a posting. Min and Max are extracted
// independently; nothing guarantees Min <= Max.
type AgeLimit struct {
	Min  *int   `json:"min,omitempty"`
	Max  *int   `json:"max,omitempty"`
	AsOn string `json:"as_on,omitempty"`
}

// Vacancies holds the total number of posts.
type Vacancies struct {
	Total *int `json:"total,omitempty"`
}

// Details is everything extracted from one detail page.
type Details struct {
	Dates       Dates
	Fees        Fees
	AgeLimit    AgeLimit
	Vacancies   Vacancies
	Eligibility []string
}

// Extractor pulls structured fields out of a detail page.
// Extraction is best effort: fields that cannot be found are left empty.
type Extractor interface {
	Extract(html string) *Details
}

// Job is the assembled record for one job posting.
type Job struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Type        JobType   `json:"type"`
	Category    Category  `json:"category"`
	Dates       Dates     `json:"dates"`
	Fees        Fees      `json:"fees"`
	AgeLimit    AgeLimit  `json:"age_limit"`
	Vacancies   Vacancies `json:"vacancies"`
	Eligibility []string  `json:"eligibility"`
	ScrapedAt   time.Time `json:"scraped_at"`
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if j.Title == "" {
		return Errorf(EINVALID, "job title required")
	}
	if j.URL == "" {
		return Errorf(EINVALID, "job URL required")
	}
	return nil
}

// RunResult is the aggregate output of one scraper run.
type RunResult struct {
	LastUpdated time.Time `json:"last_updated"`
	TotalJobs   int       `json:"total_jobs"`
	Source      string    `json:"source"`
	Jobs        []*Job    `json:"jobs"`
}

// Validate returns an error if the result is internally inconsistent.
func (r *RunResult) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "result source required")
	}
	if r.TotalJobs != len(r.Jobs) {
		return Errorf(EINVALID, "result total %d does not match %d jobs", r.TotalJobs, len(r.Jobs))
	}
	for _, job := range r.Jobs {
		if err := job.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ResultWriter persists a run result, replacing any previous one.
type ResultWriter interface {
	WriteResult(ctx context.Context, result *RunResult) error
}
