package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/govjobs"
	"github.com/fwojciec/govjobs/crawl"
	"github.com/fwojciec/govjobs/fs"
	"github.com/fwojciec/govjobs/goquery"
	govjobshttp "github.com/fwojciec/govjobs/http"
	"github.com/fwojciec/govjobs/regex"
	"github.com/fwojciec/govjobs/rod"
	govslog "github.com/fwojciec/govjobs/slog"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPaths are YAML files consulted for flag defaults, in order.
	ConfigPaths []string

	// Fetcher replaces the HTTP and browser fetchers. Set for end-to-end testing.
	Fetcher govjobs.Fetcher

	// Now is the clock used to stamp results.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{"govjobs.yaml", "~/.config/govjobs/config.yaml"},
		Now:         time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("govjobs"),
		kong.Description("Scrape government job postings into a JSON file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAMLConfig, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Console output moves to stderr when the document itself goes to stdout.
	console := stdout
	if cli.Output == fs.Stdout {
		console = stderr
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())

	fetcher, err := m.newFetcher(cli, stderr)
	if err != nil {
		return err
	}
	fetcher = govslog.NewLoggingFetcher(
		crawl.NewLimitedFetcher(fetcher, crawl.NewDomainLimiter(cli.MaxRPS)),
		logger,
	)
	defer fetcher.Close()

	scraper := &crawl.Scraper{
		Fetcher:   fetcher,
		Links:     govslog.NewLoggingLinkSelector(newLinkSelector(cli.Parser), logger),
		Extractor: regex.NewExtractor(),
		Config:    cli.Config(),
		Now:       m.Now,
		Logger:    logger,
	}

	cmd := &ScrapeCmd{
		Scraper: scraper,
		Writer:  govslog.NewLoggingResultWriter(fs.NewResultWriter(cli.Output, stdout), logger),
		Output:  cli.Output,
		Console: console,
		Logger:  logger,
	}
	if cli.Preview {
		return cmd.Preview(ctx)
	}
	return cmd.Run(ctx)
}

// newFetcher returns the injected fetcher, a headless browser, or plain HTTP.
func (m *Main) newFetcher(cli *CLI, stderr io.Writer) (govjobs.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if cli.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(govjobshttp.DefaultUserAgent),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}

	return govjobshttp.NewFetcher(govjobshttp.WithTimeout(cli.Timeout)), nil
}

func newLinkSelector(parser string) govjobs.LinkSelector {
	if parser == "goquery" {
		return goquery.NewLinkSelector()
	}
	return regex.NewLinkSelector()
}

// errorMessage prefers the operator-facing message of application errors.
func errorMessage(err error) string {
	if govjobs.ErrorCode(err) == govjobs.EINTERNAL {
		return err.Error()
	}
	return govjobs.ErrorMessage(err)
}
