package github

import (
	"sort"
	"strings"
	"time"

	"github.com/bigmacfive/questcard/internal/app"
	gogithub "github.com/google/go-github/v54/github"
)

// topLanguagesCount is how many languages the card has item slots for.
const topLanguagesCount = 6

type statsResponse struct {
	Data struct {
		User *statsResponseUser `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type statsResponseUser struct {
	Repositories struct {
		TotalCount int `json:"totalCount"`
		Nodes      []struct {
			StargazerCount int `json:"stargazerCount"`
			Languages      struct {
				Edges []struct {
					Size int `json:"size"`
					Node struct {
						Name string `json:"name"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"languages"`
		} `json:"nodes"`
	} `json:"repositories"`
	Followers struct {
		TotalCount int `json:"totalCount"`
	} `json:"followers"`
	ContributionsCollection struct {
		TotalCommitContributions int `json:"totalCommitContributions"`
		ContributionCalendar     struct {
			TotalContributions int `json:"totalContributions"`
			Weeks              []struct {
				ContributionDays []struct {
					ContributionCount int    `json:"contributionCount"`
					Date              string `json:"date"`
				} `json:"contributionDays"`
			} `json:"weeks"`
		} `json:"contributionCalendar"`
	} `json:"contributionsCollection"`
}

// ToProfileStats normalizes the graphql response into a ProfileStats record,
// computing the derived numbers: star sum, top language shares and streaks.
func (r statsResponse) ToProfileStats(login string, fetchedAt time.Time) app.ProfileStats {
	u := r.Data.User

	var stars int
	langSizes := make(map[string]int)
	for _, n := range u.Repositories.Nodes {
		stars += n.StargazerCount
		for _, e := range n.Languages.Edges {
			langSizes[e.Node.Name] += e.Size
		}
	}

	cal := u.ContributionsCollection.ContributionCalendar
	weeks := make([]app.ContributionWeek, 0, len(cal.Weeks))
	for _, w := range cal.Weeks {
		days := make([]app.ContributionDay, 0, len(w.ContributionDays))
		for _, d := range w.ContributionDays {
			days = append(days, app.ContributionDay{
				Date:  d.Date,
				Count: d.ContributionCount,
			})
		}
		weeks = append(weeks, app.ContributionWeek{Days: days})
	}

	return app.ProfileStats{
		Login:              login,
		Repos:              u.Repositories.TotalCount,
		Stars:              stars,
		Followers:          u.Followers.TotalCount,
		Commits:            u.ContributionsCollection.TotalCommitContributions,
		TotalContributions: cal.TotalContributions,
		CurrentStreak:      currentStreak(weeks),
		LongestStreak:      longestStreak(weeks),
		Languages:          topLanguages(langSizes),
		Weeks:              weeks,
		FetchedAt:          fetchedAt,
	}
}

// topLanguages collapses accumulated byte sizes into relative shares of the
// biggest languages. Ties break on name so the result is stable.
func topLanguages(sizes map[string]int) []app.LanguageShare {
	if len(sizes) == 0 {
		return nil
	}

	type langSize struct {
		name string
		size int
	}
	all := make([]langSize, 0, len(sizes))
	var total int
	for name, size := range sizes {
		all = append(all, langSize{name: name, size: size})
		total += size
	}
	if total == 0 {
		total = 1
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].size != all[j].size {
			return all[i].size > all[j].size
		}
		return all[i].name < all[j].name
	})

	if len(all) > topLanguagesCount {
		all = all[:topLanguagesCount]
	}

	shares := make([]app.LanguageShare, 0, len(all))
	for _, l := range all {
		shares = append(shares, app.LanguageShare{
			Name:    l.name,
			Percent: float64(l.size) / float64(total) * 100,
		})
	}

	return shares
}

// currentStreak counts consecutive days with contributions, scanning the
// calendar backwards. Leading empty days are skipped, so a streak survives
// a not-yet-active today; the first interior empty day ends it.
func currentStreak(weeks []app.ContributionWeek) int {
	streak := 0
	for i := len(weeks) - 1; i >= 0; i-- {
		days := weeks[i].Days
		for j := len(days) - 1; j >= 0; j-- {
			if days[j].Count > 0 {
				streak++
			} else if streak > 0 {
				return streak
			}
		}
	}
	return streak
}

// longestStreak returns the longest run of consecutive contribution days
// anywhere in the calendar.
func longestStreak(weeks []app.ContributionWeek) int {
	var longest, run int
	for _, w := range weeks {
		for _, d := range w.Days {
			if d.Count > 0 {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}
	}
	return longest
}

// eventsToCommits flattens push events into plain commit records.
// Non-push events and unparsable payloads are skipped.
func eventsToCommits(events []*gogithub.Event) []app.PushCommit {
	var commits []app.PushCommit
	for _, ev := range events {
		if ev.GetType() != "PushEvent" {
			continue
		}
		payload, err := ev.ParsePayload()
		if err != nil {
			continue
		}
		push, ok := payload.(*gogithub.PushEvent)
		if !ok {
			continue
		}

		repo := ev.GetRepo().GetName()
		if i := strings.LastIndex(repo, "/"); i >= 0 {
			repo = repo[i+1:]
		}

		for _, cm := range push.Commits {
			sha := cm.GetSHA()
			if len(sha) > 7 {
				sha = sha[:7]
			}
			commits = append(commits, app.PushCommit{
				SHA:       sha,
				Repo:      repo,
				Message:   cm.GetMessage(),
				CreatedAt: ev.GetCreatedAt().Time,
			})
		}
	}
	return commits
}
