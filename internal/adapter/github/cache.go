package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/bigmacfive/questcard/internal/app"
	lru "github.com/hashicorp/golang-lru"
)

// CachedClient wraps github client and memoizes push event listings.
//
// One run consumes the listing twice (activity log and collaboration scan);
// the cache collapses both into a single api call.
type CachedClient struct {
	client      app.GithubClient
	eventsCache *lru.Cache
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	eventsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for events: %w", err)
	}

	return &CachedClient{
		client:      client,
		eventsCache: eventsCache,
	}, nil
}

// Stats returns the user's aggregate activity snapshot.
func (c *CachedClient) Stats(ctx context.Context, login string) (app.ProfileStats, error) {
	return c.client.Stats(ctx, login)
}

// PushEvents returns commits from the user's recent public push events.
// Successful listings are memoized per login; errors are not cached.
func (c *CachedClient) PushEvents(ctx context.Context, login string) ([]app.PushCommit, error) {
	if val, ok := c.eventsCache.Get(login); ok {
		return val.([]app.PushCommit), nil
	}

	commits, err := c.client.PushEvents(ctx, login)
	if err != nil {
		return commits, err
	}
	c.eventsCache.Add(login, commits)

	return commits, nil
}
