package github

import (
	"testing"

	"github.com/bigmacfive/questcard/internal/app"
	"github.com/stretchr/testify/assert"
)

func week(counts ...int) app.ContributionWeek {
	w := app.ContributionWeek{}
	for _, c := range counts {
		w.Days = append(w.Days, app.ContributionDay{Count: c})
	}
	return w
}

func TestCurrentStreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		weeks []app.ContributionWeek
		want  int
	}{
		{
			name:  "no weeks",
			weeks: nil,
			want:  0,
		},
		{
			name:  "all empty",
			weeks: []app.ContributionWeek{week(0, 0, 0), week(0, 0)},
			want:  0,
		},
		{
			name:  "streak up to last day",
			weeks: []app.ContributionWeek{week(0, 1, 2), week(3, 4)},
			want:  4,
		},
		{
			name:  "trailing empty days are skipped",
			weeks: []app.ContributionWeek{week(1, 2, 3), week(0, 0)},
			want:  3,
		},
		{
			name:  "interior gap ends streak",
			weeks: []app.ContributionWeek{week(5, 5, 0), week(1, 2)},
			want:  2,
		},
		{
			name:  "streak spans week boundary",
			weeks: []app.ContributionWeek{week(0, 0, 1), week(1, 1), week(0)},
			want:  3,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currentStreak(tt.weeks))
		})
	}
}

func TestLongestStreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		weeks []app.ContributionWeek
		want  int
	}{
		{
			name:  "no weeks",
			weeks: nil,
			want:  0,
		},
		{
			name:  "single long run in the middle",
			weeks: []app.ContributionWeek{week(1, 0, 2), week(3, 4, 0), week(1)},
			want:  3,
		},
		{
			name:  "run spanning weeks beats current streak",
			weeks: []app.ContributionWeek{week(1, 1, 1, 1), week(0, 1)},
			want:  4,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, longestStreak(tt.weeks))
		})
	}
}

func TestTopLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sizes map[string]int
		want  []app.LanguageShare
	}{
		{
			name:  "empty",
			sizes: nil,
			want:  nil,
		},
		{
			name: "shares sum to 100",
			sizes: map[string]int{
				"Python": 50,
				"Go":     30,
				"Shell":  20,
			},
			want: []app.LanguageShare{
				{Name: "Python", Percent: 50},
				{Name: "Go", Percent: 30},
				{Name: "Shell", Percent: 20},
			},
		},
		{
			name: "clipped to slot count, ties ordered by name",
			sizes: map[string]int{
				"Python":     300,
				"TypeScript": 200,
				"Rust":       100,
				"Go":         100,
				"Shell":      100,
				"HTML":       100,
				"CSS":        100,
			},
			want: []app.LanguageShare{
				{Name: "Python", Percent: 30},
				{Name: "TypeScript", Percent: 20},
				{Name: "CSS", Percent: 10},
				{Name: "Go", Percent: 10},
				{Name: "HTML", Percent: 10},
				{Name: "Rust", Percent: 10},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, topLanguages(tt.sizes))
		})
	}
}
