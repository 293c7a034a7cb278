package mock

import (
	"context"

	"github.com/fwojciec/govjobs"
)

var _ govjobs.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of govjobs.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, result *govjobs.RunResult) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, result *govjobs.RunResult) error {
	return w.WriteResultFn(ctx, result)
}
