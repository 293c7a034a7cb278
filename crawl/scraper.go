// Package crawl drives a scraping run: it fetches the index page, picks job
// links, assembles a Job from each detail page and collects the result.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/govjobs"
)

// Defaults used by the CLI. LinkLimit, DetailLimit and Attempts also fall
// back to these when left at zero.
const (
	DefaultDetailLimit = 15
	DefaultAttempts    = 2
	DefaultRetryDelay  = time.Second
	DefaultPause       = 500 * time.Millisecond
)

// Config holds the tunables of a run.
type Config struct {
	// BaseURL is the index page; relative links resolve against it.
	BaseURL string

	// Source names the site in the result. Derived from BaseURL when empty.
	Source string

	// LinkLimit caps the links taken from the index page.
	LinkLimit int

	// DetailLimit caps the detail pages fetched.
	DetailLimit int

	// Attempts is the number of tries per fetch, RetryDelay the wait between them.
	Attempts   int
	RetryDelay time.Duration

	// Pause is the courtesy wait after each detail fetch.
	Pause time.Duration
}

func (c Config) withDefaults() Config {
	if c.Source == "" {
		c.Source = SourceFromURL(c.BaseURL)
	}
	if c.LinkLimit <= 0 {
		c.LinkLimit = govjobs.DefaultLinkLimit
	}
	if c.DetailLimit <= 0 {
		c.DetailLimit = DefaultDetailLimit
	}
	if c.Attempts <= 0 {
		c.Attempts = DefaultAttempts
	}
	return c
}

// SourceFromURL returns the host of rawURL without a leading "www.".
func SourceFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// ProgressEvent reports progress during a run. Found is the number of job
// links on the index page, before the detail limit; Total is how many of
// them are fetched.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Found     int
	Title     string
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Scraper turns an index page into a RunResult.
// Pages are fetched one at a time.
type Scraper struct {
	Fetcher   govjobs.Fetcher
	Links     govjobs.LinkSelector
	Extractor govjobs.Extractor
	Config    Config

	// Now stamps jobs and results. Defaults to time.Now.
	Now func() time.Time

	// Logger records retries and skipped pages. Optional.
	Logger *slog.Logger
}

// Discover fetches the index page and returns the job links found on it.
// A failed or empty index page is an EUNAVAILABLE error.
func (s *Scraper) Discover(ctx context.Context) ([]govjobs.JobLink, error) {
	cfg := s.Config.withDefaults()

	html, err := s.fetch(ctx, cfg, cfg.BaseURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, govjobs.Errorf(govjobs.EUNAVAILABLE, "failed to fetch index page %s: %v", cfg.BaseURL, err)
	}
	if strings.TrimSpace(html) == "" {
		return nil, govjobs.Errorf(govjobs.EUNAVAILABLE, "empty index page %s", cfg.BaseURL)
	}

	return s.Links.ExtractLinks(html, cfg.BaseURL, cfg.LinkLimit)
}

// Assemble fetches one detail page and builds a Job from it. A page that
// cannot be fetched or is blank is an ENOTFOUND error.
func (s *Scraper) Assemble(ctx context.Context, link govjobs.JobLink) (*govjobs.Job, error) {
	cfg := s.Config.withDefaults()

	html, err := s.fetch(ctx, cfg, link.URL)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil || strings.TrimSpace(html) == "" {
		return nil, govjobs.Errorf(govjobs.ENOTFOUND, "empty page: %s", link.URL)
	}

	details := s.Extractor.Extract(html)
	eligibility := details.Eligibility
	if eligibility == nil {
		eligibility = []string{}
	}

	return &govjobs.Job{
		Title:       link.Title,
		URL:         link.URL,
		Type:        govjobs.ClassifyType(link.Title),
		Category:    govjobs.ClassifyCategory(link.Title),
		Dates:       details.Dates,
		Fees:        details.Fees,
		AgeLimit:    details.AgeLimit,
		Vacancies:   details.Vacancies,
		Eligibility: eligibility,
		ScrapedAt:   s.now(),
	}, nil
}

// Run discovers job links and assembles up to DetailLimit jobs in index
// order. Pages that fail are skipped and reported through progress, which
// may be nil. Only an unavailable index page or a canceled context make
// Run fail.
func (s *Scraper) Run(ctx context.Context, progress ProgressFunc) (*govjobs.RunResult, error) {
	cfg := s.Config.withDefaults()
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	links, err := s.Discover(ctx)
	if err != nil {
		return nil, err
	}
	found := len(links)
	if found > cfg.DetailLimit {
		links = links[:cfg.DetailLimit]
	}

	total := len(links)
	progress(ProgressEvent{Type: ProgressStarted, Total: total, Found: found})

	jobs := make([]*govjobs.Job, 0, total)
	for i, link := range links {
		job, err := s.Assemble(ctx, link)
		switch {
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			if s.Logger != nil {
				s.Logger.Info("skip job", "url", link.URL, "err", err)
			}
			progress(ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: total, Title: link.Title, URL: link.URL, Error: err})
		default:
			jobs = append(jobs, job)
			progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, Title: link.Title, URL: link.URL})
		}

		if err := pause(ctx, cfg.Pause); err != nil {
			return nil, err
		}
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: len(jobs), Total: total})

	return &govjobs.RunResult{
		LastUpdated: s.now(),
		TotalJobs:   len(jobs),
		Source:      cfg.Source,
		Jobs:        jobs,
	}, nil
}

func (s *Scraper) fetch(ctx context.Context, cfg Config, url string) (string, error) {
	delays := RetryDelays(cfg.Attempts, cfg.RetryDelay)
	return FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, s.Logger, delays)
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// pause waits d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
