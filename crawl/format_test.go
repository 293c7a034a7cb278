package crawl_test

import (
	"testing"

	"github.com/fwojciec/govjobs/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		n     int
		want  string
	}{
		{"shorter than limit", "SSC CHSL 2025", 45, "SSC CHSL 2025"},
		{"cut to limit", "SSC CHSL Recruitment 2025 Apply Online", 8, "SSC CHSL"},
		{"counts runes not bytes", "भर्ती 2025 Online", 5, "भर्ती"},
		{"zero limit", "SSC", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.TruncateTitle(tt.title, tt.n))
		})
	}
}
