// Package collab detects companion tool signatures in commit messages.
package collab

import (
	"regexp"
	"strings"
)

// signatures is evaluated top to bottom; the first pattern that matches
// decides that the commit is assisted. Keep the broad co-author footer first.
var signatures = []*regexp.Regexp{
	regexp.MustCompile(`(?i)co-?authored-?by:.*\b(claude|copilot|gpt|gemini|cursor|codeium|tabnine|amazon.?q)\b`),
	regexp.MustCompile(`(?i)\b(ai|llm|copilot|claude|gpt|cursor)\s*(assisted|generated|paired|helped)`),
	regexp.MustCompile(`🤖`),
}

// companions maps a tool keyword to its party name. Evaluated in order;
// the first keyword found in the message wins, so a message naming two
// tools is counted once, for the earlier entry.
var companions = []struct {
	keyword string
	name    string
}{
	{"claude", "NAVI"},
	{"copilot", "TATL"},
	{"gpt", "TAEL"},
	{"gemini", "MIDNA"},
	{"cursor", "FI"},
	{"codeium", "EZLO"},
	{"tabnine", "CIELA"},
}

// DefaultCompanion is credited when a signature matches but no known
// tool keyword appears (e.g. a bare robot emoji).
const DefaultCompanion = "NAVI"

// Match reports whether the message carries a companion signature and,
// if so, which companion gets the credit.
func Match(message string) (string, bool) {
	matched := false
	for _, sig := range signatures {
		if sig.MatchString(message) {
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	lower := strings.ToLower(message)
	for _, c := range companions {
		if strings.Contains(lower, c.keyword) {
			return c.name, true
		}
	}

	return DefaultCompanion, true
}
