package app

import (
	"context"
	"strings"
	"time"

	"github.com/bigmacfive/questcard/internal/collab"
	"github.com/sirupsen/logrus"
)

// GithubClient returns a user's aggregate stats and recent push commits.
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/bigmacfive/questcard/internal/app GithubClient
type GithubClient interface {
	Stats(ctx context.Context, login string) (ProfileStats, error)
	PushEvents(ctx context.Context, login string) ([]PushCommit, error)
}

const (
	// activityWindow is the number of quest log rows on the card.
	activityWindow = 5
	// messageDisplayLen caps message length kept for display.
	messageDisplayLen = 40
)

// Service is the main apps entry point. Collects all records one card render needs.
type Service struct {
	githubClient GithubClient
	l            logrus.FieldLogger
}

// NewService creates new Service instance.
func NewService(githubClient GithubClient, l logrus.FieldLogger) *Service {
	return &Service{
		githubClient: githubClient,
		l:            l,
	}
}

// Collect fetches all records for given login.
//
// Collect never fails: any record whose fetch errors is degraded to its
// zero value and the error is logged, so the caller can always render.
func (s *Service) Collect(ctx context.Context, login string) Profile {
	stats, err := s.githubClient.Stats(ctx, login)
	if err != nil {
		s.l.Warnf("stats degraded for %s: %v", login, err)
		stats = ProfileStats{
			Login:     login,
			FetchedAt: time.Now().UTC(),
		}
	}

	return Profile{
		Stats:  stats,
		Events: s.collectActivity(ctx, login),
		Collab: s.collectCollaboration(ctx, login),
	}
}

// collectActivity returns the newest commits from push events,
// clipped to the display window.
func (s *Service) collectActivity(ctx context.Context, login string) []ActivityEvent {
	commits, err := s.githubClient.PushEvents(ctx, login)
	if err != nil {
		s.l.Warnf("activity degraded for %s: %v", login, err)
		return nil
	}

	events := make([]ActivityEvent, 0, activityWindow)
	for _, c := range commits {
		if len(events) == activityWindow {
			break
		}
		events = append(events, ActivityEvent{
			SHA:       c.SHA,
			Repo:      c.Repo,
			Message:   displayMessage(c.Message),
			CreatedAt: c.CreatedAt,
		})
	}

	return events
}

// collectCollaboration scans all push commit messages for companion signatures.
func (s *Service) collectCollaboration(ctx context.Context, login string) CollabBreakdown {
	commits, err := s.githubClient.PushEvents(ctx, login)
	if err != nil {
		s.l.Warnf("collaboration degraded for %s: %v", login, err)
		return CollabBreakdown{}
	}

	b := CollabBreakdown{
		Total:       len(commits),
		ByCompanion: make(map[string]int),
	}
	for _, c := range commits {
		companion, ok := collab.Match(c.Message)
		if !ok {
			continue
		}
		b.Assisted++
		b.ByCompanion[companion]++
	}

	return b
}

func displayMessage(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	// Cut on runes, a byte cut could leave invalid UTF-8 in the record.
	if r := []rune(msg); len(r) > messageDisplayLen {
		msg = string(r[:messageDisplayLen])
	}
	return msg
}
