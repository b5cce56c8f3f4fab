package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bigmacfive/questcard/internal/app"
	"github.com/bigmacfive/questcard/internal/mock"
	gogithub "github.com/google/go-github/v54/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validStatsJSON = []byte(`{
	"data": {
		"user": {
			"repositories": {
				"totalCount": 42,
				"nodes": [
					{
						"stargazerCount": 60,
						"languages": {
							"edges": [
								{"size": 4500, "node": {"name": "Python"}},
								{"size": 1500, "node": {"name": "Shell"}}
							]
						}
					},
					{
						"stargazerCount": 29,
						"languages": {
							"edges": [
								{"size": 4000, "node": {"name": "Go"}}
							]
						}
					}
				]
			},
			"followers": {"totalCount": 15},
			"contributionsCollection": {
				"totalCommitContributions": 1234,
				"contributionCalendar": {
					"totalContributions": 1500,
					"weeks": [
						{"contributionDays": [
							{"contributionCount": 0, "date": "2025-01-05"},
							{"contributionCount": 3, "date": "2025-01-06"},
							{"contributionCount": 1, "date": "2025-01-07"}
						]},
						{"contributionDays": [
							{"contributionCount": 2, "date": "2025-01-12"},
							{"contributionCount": 0, "date": "2025-01-13"}
						]}
					]
				}
			}
		}
	}
}`)

func TestClientStats(t *testing.T) {
	t.Parallel()

	var bigDataBlob []byte
	for i := 0; i < 1024*1024*10; i++ {
		bigDataBlob = append(bigDataBlob, 'x')
	}

	tests := []struct {
		name    string
		doer    *mock.HTTPDoer
		login   string
		check   func(*testing.T, app.ProfileStats)
		wantErr bool
	}{
		{
			name:    "empty login",
			login:   "",
			wantErr: true,
		},
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{validStatsJSON},
			},
			login: "bigmacfive",
			check: func(t *testing.T, stats app.ProfileStats) {
				assert.Equal(t, "bigmacfive", stats.Login)
				assert.Equal(t, 42, stats.Repos)
				assert.Equal(t, 89, stats.Stars)
				assert.Equal(t, 15, stats.Followers)
				assert.Equal(t, 1234, stats.Commits)
				assert.Equal(t, 1500, stats.TotalContributions)
				assert.Equal(t, 3, stats.CurrentStreak)
				assert.Equal(t, 3, stats.LongestStreak)
				assert.Equal(t, []app.LanguageShare{
					{Name: "Python", Percent: 45},
					{Name: "Go", Percent: 40},
					{Name: "Shell", Percent: 15},
				}, stats.Languages)
				assert.Len(t, stats.Weeks, 2)
			},
		},
		{
			name: "graphql error in body",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"errors":[{"message":"Bad credentials"}]}`)},
			},
			login:   "bigmacfive",
			wantErr: true,
		},
		{
			name: "missing user in body",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"data":{"user":null}}`)},
			},
			login:   "bigmacfive",
			wantErr: true,
		},
		{
			name: "malformed body",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"data":`)},
			},
			login:   "bigmacfive",
			wantErr: true,
		},
		{
			name: "status not ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError},
			},
			login:   "bigmacfive",
			wantErr: true,
		},
		{
			name: "rate limit exceeded",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Headers: []http.Header{
					{"X-Ratelimit-Remaining": []string{"0"}},
				},
			},
			login:   "bigmacfive",
			wantErr: true,
		},
		{
			name: "status ok, body unexpectedly large",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{bigDataBlob},
			},
			login:   "bigmacfive",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			doer := tt.doer
			if doer == nil {
				doer = &mock.HTTPDoer{}
			}
			c := NewClient(doer, nil, "https://fake/graphql", "token")
			c.now = func() time.Time {
				return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
			}

			got, err := c.Stats(context.Background(), tt.login)
			require.Equal(t, tt.wantErr, err != nil)
			if tt.wantErr {
				assert.Equal(t, app.ProfileStats{}, got)
				return
			}

			tt.check(t, got)
			assert.Equal(t, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC), got.FetchedAt)

			require.Len(t, doer.Responses, 1)
			req := doer.Responses[0].Request
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			assert.Contains(t, req.Header.Get("Authorization"), "bearer ")
		})
	}
}

func TestClientPushEvents(t *testing.T) {
	t.Parallel()

	eventsJSON := `[
		{
			"type": "PushEvent",
			"repo": {"name": "bigmacfive/dotfiles"},
			"created_at": "2025-01-15T10:00:00Z",
			"payload": {
				"commits": [
					{"sha": "a1b2c3d4e5f6a7b8", "message": "fix: update shell aliases"},
					{"sha": "d4e5f6a7b8c9d0e1", "message": "chore: update dependencies"}
				]
			}
		},
		{
			"type": "WatchEvent",
			"repo": {"name": "golang/go"},
			"created_at": "2025-01-15T09:00:00Z",
			"payload": {}
		},
		{
			"type": "PushEvent",
			"repo": {"name": "bigmacfive/webapp"},
			"created_at": "2025-01-14T08:00:00Z",
			"payload": {
				"commits": [
					{"sha": "g7h8i9j0k1l2m3n4", "message": "feat: implement dark mode toggle"}
				]
			}
		}
	]`

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, eventsJSON)
	}))
	defer srv.Close()

	rest := gogithub.NewClient(srv.Client())
	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	rest.BaseURL = baseURL

	c := NewClient(&mock.HTTPDoer{}, rest, "https://fake/graphql", "")

	commits, err := c.PushEvents(context.Background(), "bigmacfive")
	require.NoError(t, err)

	ts := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, []app.PushCommit{
		{SHA: "a1b2c3d", Repo: "dotfiles", Message: "fix: update shell aliases", CreatedAt: ts},
		{SHA: "d4e5f6a", Repo: "dotfiles", Message: "chore: update dependencies", CreatedAt: ts},
		{SHA: "g7h8i9j", Repo: "webapp", Message: "feat: implement dark mode toggle", CreatedAt: time.Date(2025, 1, 14, 8, 0, 0, 0, time.UTC)},
	}, commits)
	assert.Equal(t, "/users/bigmacfive/events/public", gotPath)
}

func TestClientPushEventsEmptyLogin(t *testing.T) {
	t.Parallel()

	c := NewClient(&mock.HTTPDoer{}, gogithub.NewClient(nil), "https://fake/graphql", "")
	_, err := c.PushEvents(context.Background(), "")
	assert.Error(t, err)
}
