package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/govjobs"
	"github.com/fwojciec/govjobs/crawl"
	"github.com/fwojciec/govjobs/fs"
)

// Console layout.
const (
	bannerWidth       = 50
	progressTitleLen  = 45
	sampleTitleLength = 50
)

// ScrapeCmd runs the scraper and reports on the console.
type ScrapeCmd struct {
	Scraper *crawl.Scraper
	Writer  govjobs.ResultWriter
	Output  string
	Console io.Writer
	Logger  *slog.Logger
}

// Run scrapes and writes the result. An unreachable index page is reported
// and is not an error; nothing is written in that case.
func (c *ScrapeCmd) Run(ctx context.Context) error {
	c.banner()

	result, err := c.Scraper.Run(ctx, c.progress)
	if govjobs.ErrorCode(err) == govjobs.EUNAVAILABLE {
		c.indexUnavailable(err)
		return nil
	} else if err != nil {
		return err
	}

	fmt.Fprintf(c.Console, "\n✓ Successfully scraped %d jobs\n", result.TotalJobs)

	if err := c.Writer.WriteResult(ctx, result); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}
	if c.Output != fs.Stdout {
		fmt.Fprintf(c.Console, "Saved to: %s\n", c.Output)
	}

	if len(result.Jobs) > 0 {
		c.sample(result.Jobs[0])
	}
	return nil
}

// Preview lists the job links found on the index page, one URL per line.
func (c *ScrapeCmd) Preview(ctx context.Context) error {
	c.banner()

	links, err := c.Scraper.Discover(ctx)
	if govjobs.ErrorCode(err) == govjobs.EUNAVAILABLE {
		c.indexUnavailable(err)
		return nil
	} else if err != nil {
		return err
	}

	fmt.Fprintf(c.Console, "Found %d job links\n\n", len(links))
	for _, link := range links {
		fmt.Fprintf(c.Console, "%s\t%s\n", link.URL, link.Title)
	}
	return nil
}

func (c *ScrapeCmd) banner() {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(c.Console, rule)
	fmt.Fprintln(c.Console, "Government Job Scraper")
	fmt.Fprintln(c.Console, rule)
	fmt.Fprintf(c.Console, "\nFetching: %s\n", c.Scraper.Config.BaseURL)
}

func (c *ScrapeCmd) indexUnavailable(err error) {
	c.Logger.Error("index unavailable", "err", err)
	fmt.Fprintln(c.Console, "✗ Failed to fetch main page")
}

func (c *ScrapeCmd) progress(event crawl.ProgressEvent) {
	switch event.Type {
	case crawl.ProgressStarted:
		fmt.Fprintf(c.Console, "Found %d job links\n", event.Found)
		fmt.Fprintf(c.Console, "Processing %d job links\n\n", event.Total)
	case crawl.ProgressCompleted, crawl.ProgressSkipped:
		mark := "✓"
		if event.Type == crawl.ProgressSkipped {
			mark = "✗"
		}
		fmt.Fprintf(c.Console, "[%2d/%d]  %s... %s\n",
			event.Completed, event.Total, crawl.TruncateTitle(event.Title, progressTitleLen), mark)
	}
}

func (c *ScrapeCmd) sample(job *govjobs.Job) {
	fmt.Fprintln(c.Console, "\nSample:")
	fmt.Fprintf(c.Console, "   Title: %s\n", crawl.TruncateTitle(job.Title, sampleTitleLength))
	fmt.Fprintf(c.Console, "   Category: %s\n", job.Category)
	fmt.Fprintf(c.Console, "   Dates: %s\n", compactJSON(job.Dates))
	fmt.Fprintf(c.Console, "   Fees: %s\n", compactJSON(job.Fees))
	fmt.Fprintf(c.Console, "   Vacancies: %s\n", compactJSON(job.Vacancies))
}

func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
