package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/govjobs"
	"github.com/fwojciec/govjobs/crawl"
	"gopkg.in/yaml.v3"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL     string        `name:"base-url" default:"https://www.sarkariresult.com/" env:"GOVJOBS_BASE_URL" help:"Index page listing the latest jobs"`
	Output      string        `name:"output" short:"o" default:"jobs.json" env:"GOVJOBS_OUTPUT" help:"Output file, or - for stdout"`
	Source      string        `name:"source" env:"GOVJOBS_SOURCE" help:"Source recorded in the output (default: host of --base-url)"`
	LinkLimit   int           `name:"link-limit" default:"25" env:"GOVJOBS_LINK_LIMIT" help:"Maximum job links taken from the index page"`
	DetailLimit int           `name:"detail-limit" default:"15" env:"GOVJOBS_DETAIL_LIMIT" help:"Maximum detail pages fetched"`
	Attempts    int           `name:"attempts" default:"2" env:"GOVJOBS_ATTEMPTS" help:"Fetch attempts per page"`
	RetryDelay  time.Duration `name:"retry-delay" default:"1s" env:"GOVJOBS_RETRY_DELAY" help:"Wait between fetch attempts"`
	Timeout     time.Duration `name:"timeout" short:"t" default:"15s" env:"GOVJOBS_TIMEOUT" help:"Fetch timeout per page"`
	Pause       time.Duration `name:"pause" default:"500ms" env:"GOVJOBS_PAUSE" help:"Courtesy wait after each detail page"`
	MaxRPS      float64       `name:"max-rps" default:"2" env:"GOVJOBS_MAX_RPS" help:"Requests per second per host, 0 for unlimited"`
	Parser      string        `name:"parser" enum:"regex,goquery" default:"regex" env:"GOVJOBS_PARSER" help:"Index page link parser (regex, goquery)"`
	Browser     bool          `name:"browser" env:"GOVJOBS_BROWSER" help:"Render pages in headless Chrome"`
	Preview     bool          `name:"preview" short:"p" help:"List discovered job links without fetching details"`
	Verbose     bool          `name:"verbose" short:"v" help:"Enable debug logging"`
}

// Validate is called by Kong after parsing.
func (c *CLI) Validate() error {
	switch {
	case c.LinkLimit < 1:
		return govjobs.Errorf(govjobs.EINVALID, "--link-limit must be at least 1")
	case c.DetailLimit < 1:
		return govjobs.Errorf(govjobs.EINVALID, "--detail-limit must be at least 1")
	case c.Attempts < 1:
		return govjobs.Errorf(govjobs.EINVALID, "--attempts must be at least 1")
	case c.RetryDelay < 0, c.Pause < 0, c.Timeout <= 0:
		return govjobs.Errorf(govjobs.EINVALID, "durations must not be negative")
	case c.MaxRPS < 0:
		return govjobs.Errorf(govjobs.EINVALID, "--max-rps must not be negative")
	}
	if _, ok := govjobs.NormalizeURL(c.BaseURL, c.BaseURL); !ok {
		return govjobs.Errorf(govjobs.EINVALID, "--base-url must be an absolute http(s) URL")
	}
	return nil
}

// Config returns the scraper configuration described by the flags.
func (c *CLI) Config() crawl.Config {
	return crawl.Config{
		BaseURL:     c.BaseURL,
		Source:      c.Source,
		LinkLimit:   c.LinkLimit,
		DetailLimit: c.DetailLimit,
		Attempts:    c.Attempts,
		RetryDelay:  c.RetryDelay,
		Pause:       c.Pause,
	}
}

// YAMLConfig is a kong.ConfigurationLoader for YAML files. Keys are flag
// names, with either dashes or underscores.
func YAMLConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var resolver kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		if v, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
			return v, nil
		}
		return nil, nil
	}
	return resolver, nil
}
