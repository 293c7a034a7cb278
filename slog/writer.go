package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/govjobs"
)

// Ensure LoggingResultWriter implements govjobs.ResultWriter.
var _ govjobs.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter with logging.
type LoggingResultWriter struct {
	next   govjobs.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next govjobs.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// WriteResult delegates to the wrapped writer and logs the job count.
func (w *LoggingResultWriter) WriteResult(ctx context.Context, result *govjobs.RunResult) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write result",
			"source", result.Source,
			"jobs", result.TotalJobs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteResult(ctx, result)
}
