package app

import "time"

// ProfileStats is a snapshot of a user's aggregate activity numbers.
type ProfileStats struct {
	Login              string
	Repos              int
	Stars              int
	Followers          int
	Commits            int
	TotalContributions int
	CurrentStreak      int
	LongestStreak      int
	Languages          []LanguageShare
	Weeks              []ContributionWeek
	FetchedAt          time.Time
}

// LanguageShare is a language with its relative usage across the user's repositories.
type LanguageShare struct {
	Name    string
	Percent float64
}

// ContributionWeek is one column of the contribution calendar.
type ContributionWeek struct {
	Days []ContributionDay
}

// ContributionDay is one calendar day bucket.
type ContributionDay struct {
	// Date in YYYY-MM-DD form, as returned by the contribution calendar.
	Date  string
	Count int
}

// PushCommit is a single commit taken from the user's public push events.
type PushCommit struct {
	SHA       string
	Repo      string
	Message   string
	CreatedAt time.Time
}

// ActivityEvent is one quest log row: a recent commit trimmed for display.
type ActivityEvent struct {
	SHA       string
	Repo      string
	Message   string
	CreatedAt time.Time
}

// CollabBreakdown counts commits by originating companion tool,
// detected from commit message signatures.
type CollabBreakdown struct {
	// Total is the number of commits scanned.
	Total int
	// Assisted is the number of commits carrying any known signature.
	Assisted int
	// ByCompanion maps companion name to matched commit count.
	ByCompanion map[string]int
}

// Profile bundles everything one card render needs.
type Profile struct {
	Stats  ProfileStats
	Events []ActivityEvent
	Collab CollabBreakdown
}
