package github

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bigmacfive/questcard/internal/app"
	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage.
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// ClientWithSnapshots wraps GithubClient and keeps the last good result of
// every fetch in a kv store.
//
// A successful live fetch is passed through and saved. When the live fetch
// fails, a stored snapshot younger than ttl is served instead, so a run
// behind a flaky network or an exhausted rate limit still renders real
// numbers rather than a zeroed card.
type ClientWithSnapshots struct {
	client app.GithubClient
	store  KVStore
	ttl    time.Duration
	l      logrus.FieldLogger

	now func() time.Time
}

var _ app.GithubClient = &ClientWithSnapshots{}

// NewClientWithSnapshots creates new ClientWithSnapshots instance.
func NewClientWithSnapshots(
	client app.GithubClient,
	store KVStore,
	ttl time.Duration,
	l logrus.FieldLogger,
) *ClientWithSnapshots {
	return &ClientWithSnapshots{
		client: client,
		store:  store,
		ttl:    ttl,
		l:      l,
		now:    time.Now,
	}
}

// Stats returns the user's aggregate activity snapshot.
// Falls back to the stored copy when the live fetch fails.
func (c *ClientWithSnapshots) Stats(ctx context.Context, login string) (app.ProfileStats, error) {
	stats, err := c.client.Stats(ctx, login)
	if err == nil {
		c.save(statsKey(login), stats)
		return stats, nil
	}

	var stored app.ProfileStats
	if c.read(statsKey(login), &stored) {
		c.l.Warnf("serving stats snapshot for %s, live fetch failed: %v", login, err)
		return stored, nil
	}

	return app.ProfileStats{}, err
}

// PushEvents returns commits from the user's recent public push events.
// Falls back to the stored copy when the live fetch fails.
func (c *ClientWithSnapshots) PushEvents(ctx context.Context, login string) ([]app.PushCommit, error) {
	commits, err := c.client.PushEvents(ctx, login)
	if err == nil {
		c.save(eventsKey(login), commits)
		return commits, nil
	}

	var stored []app.PushCommit
	if c.read(eventsKey(login), &stored) {
		c.l.Warnf("serving push events snapshot for %s, live fetch failed: %v", login, err)
		return stored, nil
	}

	return nil, err
}

type snapshotEntry struct {
	Created int64
	Data    json.RawMessage
}

// save stores result under key. Failures are logged only: snapshots are an
// optimization, never a reason to fail a fetch that already succeeded.
func (c *ClientWithSnapshots) save(key []byte, result interface{}) {
	data, err := json.Marshal(result)
	if err != nil {
		c.l.Warnf("serializing snapshot %s: %v", key, err)
		return
	}
	entry, err := json.Marshal(snapshotEntry{
		Created: c.now().Unix(),
		Data:    data,
	})
	if err != nil {
		c.l.Warnf("serializing snapshot entry %s: %v", key, err)
		return
	}
	if err := c.store.UpdateKey(key, entry); err != nil {
		c.l.Warnf("saving snapshot %s: %v", key, err)
	}
}

// read loads a stored entry into dst. Returns false when there is no entry,
// the entry is older than ttl, or it cannot be decoded.
func (c *ClientWithSnapshots) read(key []byte, dst interface{}) bool {
	data, err := c.store.ReadKey(key)
	if err != nil {
		c.l.Warnf("reading snapshot %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}

	var entry snapshotEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.l.Warnf("unserializing snapshot entry %s: %v", key, err)
		return false
	}
	if time.Unix(entry.Created, 0).Add(c.ttl).Before(c.now()) {
		return false
	}
	if err := json.Unmarshal(entry.Data, dst); err != nil {
		c.l.Warnf("unserializing snapshot %s: %v", key, err)
		return false
	}

	return true
}

func statsKey(login string) []byte {
	return []byte(fmt.Sprintf("st/%s", login))
}

func eventsKey(login string) []byte {
	return []byte(fmt.Sprintf("ev/%s", login))
}
