package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/govjobs"
)

// Ensure LoggingLinkSelector implements govjobs.LinkSelector.
var _ govjobs.LinkSelector = (*LoggingLinkSelector)(nil)

// LoggingLinkSelector wraps a LinkSelector with logging.
type LoggingLinkSelector struct {
	next   govjobs.LinkSelector
	logger *slog.Logger
}

// NewLoggingLinkSelector creates a new LoggingLinkSelector.
func NewLoggingLinkSelector(next govjobs.LinkSelector, logger *slog.Logger) *LoggingLinkSelector {
	return &LoggingLinkSelector{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped selector and logs the link count.
func (s *LoggingLinkSelector) ExtractLinks(html string, baseURL string, limit int) (links []govjobs.JobLink, err error) {
	defer func(begin time.Time) {
		s.logger.Info("extract links",
			"selector", s.next.Name(),
			"url", baseURL,
			"limit", limit,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractLinks(html, baseURL, limit)
}

// Name delegates to the wrapped selector.
func (s *LoggingLinkSelector) Name() string {
	return s.next.Name()
}
