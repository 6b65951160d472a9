// Package guard implements service.ArchiveGuard.
package guard

import (
	"context"
	"sync"
	"time"
)

// LocalGuard holds claims in process memory. It serializes overlapping runs
// inside one process only.
type LocalGuard struct {
	mu     sync.Mutex
	claims map[string]time.Time
	now    func() time.Time
}

// NewLocalGuard creates an empty in-process guard.
func NewLocalGuard() *LocalGuard {
	return &LocalGuard{claims: make(map[string]time.Time), now: time.Now}
}

// Claim implements service.ArchiveGuard. Expired claims are taken over.
func (g *LocalGuard) Claim(_ context.Context, ids []string, ttl time.Duration) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	claimed := make([]string, 0, len(ids))
	for _, id := range ids {
		if until, ok := g.claims[id]; ok && now.Before(until) {
			continue
		}
		g.claims[id] = now.Add(ttl)
		claimed = append(claimed, id)
	}

	return claimed, nil
}

// Release implements service.ArchiveGuard.
func (g *LocalGuard) Release(_ context.Context, ids []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		delete(g.claims, id)
	}

	return nil
}
