package render

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigmacfive/questcard/internal/adapter/demo"
	"github.com/bigmacfive/questcard/internal/app"
)

func demoProfile(t *testing.T) app.Profile {
	t.Helper()

	l := logrus.New()
	l.Out = io.Discard

	return app.NewService(demo.NewClient(), l).Collect(context.Background(), "bigmacfive")
}

func TestCardIsDeterministic(t *testing.T) {
	t.Parallel()

	p := demoProfile(t)

	first, err := Card(p)
	require.NoError(t, err)
	second, err := Card(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCardIsWellFormed(t *testing.T) {
	t.Parallel()

	p := demoProfile(t)

	out, err := Card(p)
	require.NoError(t, err)

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
	}

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.NotContains(t, out, "<script")
}

func TestCardEmptyProfile(t *testing.T) {
	t.Parallel()

	p := app.Profile{Stats: app.ProfileStats{
		Login:     "somebody",
		FetchedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}}

	out, err := Card(p)
	require.NoError(t, err)

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		if _, err := dec.Token(); err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
	}

	assert.Contains(t, out, "SOMEBODY")
	assert.Contains(t, out, "NO QUESTS RECORDED...")
	assert.Contains(t, out, "- -")
	assert.Contains(t, out, "HERO 100%")
	assert.Contains(t, out, "2024-06-15 12:00 UTC")
}

func TestAssembleInvalidLayout(t *testing.T) {
	t.Parallel()

	l := DefaultLayout
	l.HUD.W = -1

	_, err := Assemble(l, app.Profile{})
	assert.Error(t, err)
}

func TestDungeonMapClipsToRecentWeeks(t *testing.T) {
	t.Parallel()

	weeks := make([]app.ContributionWeek, 30)
	for i := range weeks {
		days := make([]app.ContributionDay, 7)
		for d := range days {
			days[d] = app.ContributionDay{
				Date: fmt.Sprintf("2024-%02d-%02d", i/4+1, d+1),
			}
		}
		weeks[i] = app.ContributionWeek{Days: days}
	}

	out := renderDungeonMap(DefaultLayout.DungeonMap, weeks)

	// 22 weeks of 7 empty cells plus the legend swatch.
	assert.Equal(t, 22*7+1, strings.Count(out, heatLevels[0]))
}

func TestQuestLogRendersRows(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []app.ActivityEvent{
		{SHA: "abc1234", Repo: "a-repository-name-too-long", Message: "fix: something", CreatedAt: ref.Add(-2 * time.Hour)},
		{SHA: "def5678", Repo: "tools", Message: "feat: other", CreatedAt: ref.Add(-26 * time.Hour)},
	}

	out := renderQuestLog(DefaultLayout.QuestLog, events, ref)

	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "a-repository-n")
	assert.NotContains(t, out, "a-repository-name")
	assert.Contains(t, out, "2h")
	assert.Contains(t, out, "1d")
	assert.NotContains(t, out, "NO QUESTS RECORDED")
}

func TestPartySegmentsOrdering(t *testing.T) {
	t.Parallel()

	segs := partySegments(map[string]int{
		"TATL": 2, "NAVI": 5, "FI": 2,
	})

	assert.Equal(t, []partySegment{{"NAVI", 5}, {"FI", 2}, {"TATL", 2}}, segs)
}

func TestPartyBarWidths(t *testing.T) {
	t.Parallel()

	r := DefaultLayout.Party
	out := renderParty(r, app.CollabBreakdown{
		Total:    10,
		Assisted: 4,
		ByCompanion: map[string]int{
			"NAVI": 3,
			"TATL": 1,
		},
	})

	assert.Contains(t, out, "HERO 60%")
	assert.Contains(t, out, "NAVI 30%")
	assert.Contains(t, out, "TATL 10%")

	barW := r.W - 120
	heroW := fmt.Sprintf(`width="%d"`, barW*60/100)
	assert.Contains(t, out, heroW)
}
