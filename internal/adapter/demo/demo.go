// Package demo is a stand-in data source used when no api token is
// configured, so the card can always be generated and previewed.
package demo

import (
	"context"
	"math/rand"
	"time"

	"github.com/bigmacfive/questcard/internal/app"
)

// weeksShown matches the trailing window the contribution calendar covers.
const weeksShown = 26

// Client serves fixed placeholder records.
type Client struct {
	now func() time.Time
}

var _ app.GithubClient = &Client{}

// NewClient creates new demo client.
func NewClient() *Client {
	return &Client{now: time.Now}
}

// Stats returns a fixed, plausible activity snapshot.
// The calendar is generated with a fixed seed so repeated runs agree.
func (c *Client) Stats(ctx context.Context, login string) (app.ProfileStats, error) {
	now := c.now().UTC()

	rng := rand.New(rand.NewSource(42))
	start := now.AddDate(0, 0, -weeksShown*7)
	weeks := make([]app.ContributionWeek, 0, weeksShown)
	for w := 0; w < weeksShown; w++ {
		var week app.ContributionWeek
		for d := 0; d < 7; d++ {
			day := start.AddDate(0, 0, w*7+d)
			week.Days = append(week.Days, app.ContributionDay{
				Date:  day.Format("2006-01-02"),
				Count: rng.Intn(13),
			})
		}
		weeks = append(weeks, week)
	}

	return app.ProfileStats{
		Login:              login,
		Repos:              42,
		Stars:              89,
		Followers:          15,
		Commits:            1234,
		TotalContributions: 1500,
		CurrentStreak:      28,
		LongestStreak:      42,
		Languages: []app.LanguageShare{
			{Name: "Python", Percent: 45.2},
			{Name: "TypeScript", Percent: 23.1},
			{Name: "Rust", Percent: 12.4},
			{Name: "Go", Percent: 8.7},
			{Name: "Shell", Percent: 6.2},
			{Name: "HTML", Percent: 4.4},
		},
		Weeks:     weeks,
		FetchedAt: now,
	}, nil
}

// PushEvents returns a fixed recent history, including assisted commits so
// the party panel has something to show.
func (c *Client) PushEvents(ctx context.Context, login string) ([]app.PushCommit, error) {
	now := c.now().UTC()

	return []app.PushCommit{
		{
			SHA:       "a1b2c3f",
			Repo:      login,
			Message:   "feat: add zelda dashboard theme\n\nCo-Authored-By: Claude <noreply@anthropic.com>",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			SHA:       "d4e5f6a",
			Repo:      "dotfiles",
			Message:   "fix: update shell aliases",
			CreatedAt: now.Add(-26 * time.Hour),
		},
		{
			SHA:       "g7h8i9j",
			Repo:      "api-server",
			Message:   "refactor: clean up middleware",
			CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			SHA:       "k0l1m2n",
			Repo:      login,
			Message:   "chore: update dependencies\n\nCo-Authored-By: Copilot <bot@github.com>",
			CreatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			SHA:       "o3p4q5r",
			Repo:      "webapp",
			Message:   "feat: implement dark mode toggle",
			CreatedAt: now.Add(-4 * 24 * time.Hour),
		},
	}, nil
}
