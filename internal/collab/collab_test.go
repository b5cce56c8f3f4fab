package collab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		message       string
		wantCompanion string
		wantMatch     bool
	}{
		{
			name:      "plain message",
			message:   "fix: update shell aliases",
			wantMatch: false,
		},
		{
			name:      "tool keyword without signature",
			message:   "docs: describe the copilot integration",
			wantMatch: false,
		},
		{
			name:          "co-author footer",
			message:       "feat: add dark mode\n\nCo-Authored-By: Claude <noreply@anthropic.com>",
			wantCompanion: "NAVI",
			wantMatch:     true,
		},
		{
			name:          "co-author footer case insensitive",
			message:       "chore: bump deps\n\nco-authored-by: COPILOT <bot@github.com>",
			wantCompanion: "TATL",
			wantMatch:     true,
		},
		{
			name:          "assisted phrasing",
			message:       "refactor: gpt assisted cleanup of middleware",
			wantCompanion: "TAEL",
			wantMatch:     true,
		},
		{
			name:          "robot emoji only",
			message:       "fix: handle rate limit 🤖",
			wantCompanion: DefaultCompanion,
			wantMatch:     true,
		},
		{
			name:          "two tools in one message counts first listed",
			message:       "feat: login flow\n\nCo-Authored-By: Copilot <bot>\nCo-Authored-By: Claude <bot>",
			wantCompanion: "NAVI",
			wantMatch:     true,
		},
		{
			name:          "gemini cursor ordering",
			message:       "cursor paired refactor with gemini review",
			wantCompanion: "MIDNA",
			wantMatch:     true,
		},
		{
			name:          "signature without known keyword",
			message:       "chore: sync\n\nCo-Authored-By: Amazon Q <bot@aws>",
			wantCompanion: DefaultCompanion,
			wantMatch:     true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			companion, ok := Match(tt.message)
			assert.Equal(t, tt.wantMatch, ok)
			assert.Equal(t, tt.wantCompanion, companion)
		})
	}
}
