package github

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bigmacfive/questcard/internal/app"
	appmock "github.com/bigmacfive/questcard/internal/app/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCachedClientInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := NewCachedClient(nil, 0)
	assert.Error(t, err)
}

func TestCachedClientPushEvents(t *testing.T) {
	t.Parallel()

	commits := []app.PushCommit{
		{SHA: "a1b2c3f", Repo: "dotfiles", Message: "fix: aliases", CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := appmock.NewMockGithubClient(ctrl)
	m.EXPECT().
		PushEvents(gomock.Any(), "bigmacfive").
		Return(commits, nil).
		Times(1)

	c, err := NewCachedClient(m, 10)
	require.NoError(t, err)

	// Both consumers of the listing share one underlying call.
	got, err := c.PushEvents(context.Background(), "bigmacfive")
	require.NoError(t, err)
	assert.Equal(t, commits, got)

	got, err = c.PushEvents(context.Background(), "bigmacfive")
	require.NoError(t, err)
	assert.Equal(t, commits, got)
}

func TestCachedClientPushEventsErrorNotCached(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := appmock.NewMockGithubClient(ctrl)
	m.EXPECT().
		PushEvents(gomock.Any(), "bigmacfive").
		Return(nil, errors.New("boom")).
		Times(2)

	c, err := NewCachedClient(m, 10)
	require.NoError(t, err)

	_, err = c.PushEvents(context.Background(), "bigmacfive")
	assert.Error(t, err)
	_, err = c.PushEvents(context.Background(), "bigmacfive")
	assert.Error(t, err)
}

func TestCachedClientStatsPassthrough(t *testing.T) {
	t.Parallel()

	stats := app.ProfileStats{Login: "bigmacfive", Repos: 42}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := appmock.NewMockGithubClient(ctrl)
	m.EXPECT().
		Stats(gomock.Any(), "bigmacfive").
		Return(stats, nil).
		Times(2)

	c, err := NewCachedClient(m, 10)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		got, err := c.Stats(context.Background(), "bigmacfive")
		require.NoError(t, err)
		assert.Equal(t, stats, got)
	}
}
