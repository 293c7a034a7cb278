package mock

import "github.com/fwojciec/govjobs"

var _ govjobs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of govjobs.Extractor.
type Extractor struct {
	ExtractFn func(html string) *govjobs.Details
}

func (e *Extractor) Extract(html string) *govjobs.Details {
	return e.ExtractFn(html)
}
