package mock

import "github.com/fwojciec/govjobs"

var _ govjobs.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of govjobs.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string, limit int) ([]govjobs.JobLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string, limit int) ([]govjobs.JobLink, error) {
	return s.ExtractLinksFn(html, baseURL, limit)
}

func (s *LinkSelector) Name() string {
	return s.NameFn()
}
