package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/govjobs"
	"github.com/fwojciec/govjobs/crawl"
	"github.com/fwojciec/govjobs/mock"
	"github.com/fwojciec/govjobs/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://www.sarkariresult.com/"

var fixedTime = time.Date(2025, 7, 1, 6, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

// pages builds a fetcher that serves html by URL and fails for unknown URLs.
func pages(m map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			html, ok := m[url]
			if !ok {
				return "", fmt.Errorf("HTTP 404 for %s", url)
			}
			return html, nil
		},
	}
}

func indexPage(links ...string) string {
	var b strings.Builder
	b.WriteString("<html><body><ul>")
	for _, l := range links {
		b.WriteString(l)
	}
	b.WriteString("</ul></body></html>")
	return b.String()
}

func anchor(href, text string) string {
	return fmt.Sprintf(`<li><a href="%s">%s</a></li>`, href, text)
}

func newScraper(fetcher govjobs.Fetcher) *crawl.Scraper {
	return &crawl.Scraper{
		Fetcher:   fetcher,
		Links:     regex.NewLinkSelector(),
		Extractor: regex.NewExtractor(),
		Config:    crawl.Config{BaseURL: baseURL, RetryDelay: 0, Pause: 0},
		Now:       fixedClock,
	}
}

func TestScraper_Run(t *testing.T) {
	t.Parallel()

	t.Run("assembles jobs from detail pages", func(t *testing.T) {
		t.Parallel()

		fetcher := pages(map[string]string{
			baseURL: indexPage(
				anchor("/ssc/chsl2025/", "SSC CHSL Recruitment 2025 Apply Online"),
				anchor("/rrb/ntpc/", "RRB NTPC Answer Key 2025"),
			),
			baseURL + "ssc/chsl2025/": `<h3>Application Fee</h3><p>General : 100/-</p><h3>Important Links</h3>
<p>Last Date to Apply Online : 18/07/2025</p><p>Total : 3131 Post</p>`,
			baseURL + "rrb/ntpc/": `<p>Answer Key Available : 20/07/2025</p>`,
		})

		result, err := newScraper(fetcher).Run(context.Background(), nil)

		require.NoError(t, err)
		require.NoError(t, result.Validate())
		assert.Equal(t, "sarkariresult.com", result.Source)
		assert.Equal(t, fixedTime, result.LastUpdated)
		require.Equal(t, 2, result.TotalJobs)

		ssc := result.Jobs[0]
		assert.Equal(t, "SSC CHSL Recruitment 2025 Apply Online", ssc.Title)
		assert.Equal(t, baseURL+"ssc/chsl2025/", ssc.URL)
		assert.Equal(t, govjobs.TypeRecruitment, ssc.Type)
		assert.Equal(t, govjobs.CategorySSC, ssc.Category)
		assert.Equal(t, "18/07/2025", ssc.Dates.LastDate)
		assert.Equal(t, 100, *ssc.Fees.General)
		assert.Equal(t, 3131, *ssc.Vacancies.Total)
		assert.Equal(t, fixedTime, ssc.ScrapedAt)

		rrb := result.Jobs[1]
		assert.Equal(t, govjobs.TypeAnswerKey, rrb.Type)
		assert.Equal(t, govjobs.CategoryRailway, rrb.Category)
		assert.Equal(t, []string{}, rrb.Eligibility)
	})

	t.Run("skips empty and failing detail pages", func(t *testing.T) {
		t.Parallel()

		fetcher := pages(map[string]string{
			baseURL: indexPage(
				anchor("/a/", "SSC CGL Recruitment 2025 Online Form"),
				anchor("/b/", "UPSC Civil Services Notification 2025"),
				anchor("/c/", "IBPS PO Admit Card 2025 Download"),
				anchor("/d/", "Bihar Police Constable Result 2025"),
			),
			baseURL + "a/": "<p>ok</p>",
			baseURL + "b/": "   \n",
			baseURL + "d/": "<p>ok</p>",
		})

		var events []crawl.ProgressEvent
		result, err := newScraper(fetcher).Run(context.Background(), func(e crawl.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalJobs)
		require.Len(t, result.Jobs, 2)
		assert.Equal(t, baseURL+"a/", result.Jobs[0].URL)
		assert.Equal(t, baseURL+"d/", result.Jobs[1].URL)

		require.Len(t, events, 6)
		assert.Equal(t, crawl.ProgressStarted, events[0].Type)
		assert.Equal(t, 4, events[0].Total)
		assert.Equal(t, 4, events[0].Found)
		assert.Equal(t, crawl.ProgressCompleted, events[1].Type)
		assert.Equal(t, crawl.ProgressSkipped, events[2].Type)
		assert.Equal(t, govjobs.ENOTFOUND, govjobs.ErrorCode(events[2].Error))
		assert.Equal(t, crawl.ProgressSkipped, events[3].Type)
		assert.Equal(t, 3, events[3].Completed)
		assert.Equal(t, crawl.ProgressCompleted, events[4].Type)
		assert.Equal(t, crawl.ProgressFinished, events[5].Type)
		assert.Equal(t, 2, events[5].Completed)
	})

	t.Run("fetches at most the detail limit", func(t *testing.T) {
		t.Parallel()

		site := map[string]string{}
		var anchors []string
		for i := range 20 {
			path := fmt.Sprintf("/job/%d/", i)
			anchors = append(anchors, anchor(path, fmt.Sprintf("Recruitment Notice Number %d", i)))
			site[baseURL+path[1:]] = "<p>ok</p>"
		}
		site[baseURL] = indexPage(anchors...)

		var fetched []string
		inner := pages(site)
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				return inner.FetchFn(ctx, url)
			},
		}

		var started crawl.ProgressEvent
		result, err := newScraper(fetcher).Run(context.Background(), func(e crawl.ProgressEvent) {
			if e.Type == crawl.ProgressStarted {
				started = e
			}
		})

		require.NoError(t, err)
		assert.Equal(t, 20, started.Found)
		assert.Equal(t, crawl.DefaultDetailLimit, started.Total)
		assert.Equal(t, crawl.DefaultDetailLimit, result.TotalJobs)
		assert.Len(t, fetched, 1+crawl.DefaultDetailLimit)
		assert.Equal(t, baseURL+"job/14/", result.Jobs[14].URL)
	})

	t.Run("returns unavailable error when index fetch fails", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				calls++
				return "", errors.New("connection refused")
			},
		}

		result, err := newScraper(fetcher).Run(context.Background(), nil)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, govjobs.EUNAVAILABLE, govjobs.ErrorCode(err))
		assert.Equal(t, crawl.DefaultAttempts, calls)
	})

	t.Run("returns unavailable error when index page is empty", func(t *testing.T) {
		t.Parallel()

		fetcher := pages(map[string]string{baseURL: ""})

		_, err := newScraper(fetcher).Run(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, govjobs.EUNAVAILABLE, govjobs.ErrorCode(err))
	})

	t.Run("returns empty job list when index has no job links", func(t *testing.T) {
		t.Parallel()

		fetcher := pages(map[string]string{baseURL: indexPage(anchor("/", "Home"))})

		result, err := newScraper(fetcher).Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 0, result.TotalJobs)
		assert.NotNil(t, result.Jobs)
		assert.Empty(t, result.Jobs)
	})

	t.Run("uses configured source", func(t *testing.T) {
		t.Parallel()

		s := newScraper(pages(map[string]string{baseURL: indexPage()}))
		s.Config.Source = "Sarkari Result"

		result, err := s.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "Sarkari Result", result.Source)
	})

	t.Run("is deterministic under a fixed clock", func(t *testing.T) {
		t.Parallel()

		site := map[string]string{
			baseURL: indexPage(
				anchor("/a/", "SSC CGL Recruitment 2025 Online Form"),
				anchor("/b/", "RRB Group D Exam Date 2025"),
			),
			baseURL + "a/": `<p>12th Class Passed. Graduation in Any Stream. ITI Certificate.</p>`,
			baseURL + "b/": `<p>Exam Date : 01/12/2025</p><p>Total : 32438 Posts</p>`,
		}

		first, err := newScraper(pages(site)).Run(context.Background(), nil)
		require.NoError(t, err)
		second, err := newScraper(pages(site)).Run(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == baseURL {
					return indexPage(
						anchor("/a/", "SSC CGL Recruitment 2025 Online Form"),
						anchor("/b/", "RRB Group D Exam Date 2025"),
					), nil
				}
				cancel()
				return "<p>ok</p>", nil
			},
		}

		result, err := newScraper(fetcher).Run(ctx, nil)

		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
	})

	t.Run("passes link limit to the selector", func(t *testing.T) {
		t.Parallel()

		var gotLimit int
		s := newScraper(pages(map[string]string{baseURL: "<html></html>"}))
		s.Links = &mock.LinkSelector{
			ExtractLinksFn: func(_ string, base string, limit int) ([]govjobs.JobLink, error) {
				gotLimit = limit
				return []govjobs.JobLink{}, nil
			},
			NameFn: func() string { return "mock" },
		}

		_, err := s.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, govjobs.DefaultLinkLimit, gotLimit)
	})
}

func TestScraper_Assemble(t *testing.T) {
	t.Parallel()

	t.Run("retries a failing fetch", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				calls++
				if calls == 1 {
					return "", errors.New("timeout")
				}
				return "<p>Minimum Age : 18 Years</p>", nil
			},
		}
		link := govjobs.JobLink{URL: baseURL + "ssc/", Title: "SSC MTS Recruitment 2025"}

		job, err := newScraper(fetcher).Assemble(context.Background(), link)

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 18, *job.AgeLimit.Min)
	})

	t.Run("returns not found after all attempts fail", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				calls++
				return "", errors.New("timeout")
			},
		}
		link := govjobs.JobLink{URL: baseURL + "ssc/", Title: "SSC MTS Recruitment 2025"}

		job, err := newScraper(fetcher).Assemble(context.Background(), link)

		require.Error(t, err)
		assert.Nil(t, job)
		assert.Equal(t, govjobs.ENOTFOUND, govjobs.ErrorCode(err))
		assert.Equal(t, crawl.DefaultAttempts, calls)
	})

	t.Run("uses extractor output", func(t *testing.T) {
		t.Parallel()

		s := newScraper(pages(map[string]string{baseURL + "x/": "<p>page</p>"}))
		s.Extractor = &mock.Extractor{
			ExtractFn: func(html string) *govjobs.Details {
				assert.Equal(t, "<p>page</p>", html)
				return &govjobs.Details{
					Dates:       govjobs.Dates{ExamDate: "08/09/2025"},
					Eligibility: []string{"Graduate in Any Stream"},
				}
			},
		}
		link := govjobs.JobLink{URL: baseURL + "x/", Title: "Delhi High Court Junior Assistant Recruitment 2025"}

		job, err := s.Assemble(context.Background(), link)

		require.NoError(t, err)
		assert.Equal(t, "08/09/2025", job.Dates.ExamDate)
		assert.Equal(t, []string{"Graduate in Any Stream"}, job.Eligibility)
		assert.Equal(t, govjobs.CategoryCentralGovt, job.Category)
	})
}

func TestSourceFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.sarkariresult.com/", "sarkariresult.com"},
		{"https://sarkariresult.com/latestjob/", "sarkariresult.com"},
		{"http://www.freejobalert.com:8080/", "freejobalert.com"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.SourceFromURL(tt.url))
		})
	}
}
