package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234, "1,234"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCount(tt.in))
	}
}

func TestRelTime(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, ""},
		{"seconds ago", ref.Add(-30 * time.Second), "now"},
		{"minutes ago", ref.Add(-5 * time.Minute), "5m"},
		{"hours ago", ref.Add(-3 * time.Hour), "3h"},
		{"one day ago", ref.Add(-25 * time.Hour), "1d"},
		{"days ago", ref.Add(-5 * 24 * time.Hour), "5d"},
		{"months ago", ref.Add(-65 * 24 * time.Hour), "2mo"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relTime(tt.t, ref))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 14))
	assert.Equal(t, "exactly-14-chr", truncate("exactly-14-chrs", 14))
	assert.Equal(t, "日本語", truncate("日本語テスト", 3))
}

func TestEsc(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fix: a &lt;b&gt; &amp; c", esc("fix: a <b> & c"))
}
