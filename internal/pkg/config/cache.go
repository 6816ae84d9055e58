package config

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lurra-labs/elevate/internal/core/domain"
)

// Cache memoizes the configuration snapshot for the process lifetime.
// The snapshot is computed at most once between invalidations; all callers
// observe the same immutable value. Load failures are not memoized, so a
// transient filesystem error does not poison the cache.
type Cache struct {
	load func(context.Context) (*domain.Snapshot, error)

	mu   sync.Mutex
	snap atomic.Pointer[domain.Snapshot]
}

// NewCache creates a snapshot cache around a load function.
func NewCache(load func(context.Context) (*domain.Snapshot, error)) *Cache {
	return &Cache{load: load}
}

// Snapshot returns the memoized snapshot, computing it on first use.
func (c *Cache) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if s := c.snap.Load(); s != nil {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s := c.snap.Load(); s != nil {
		return s, nil
	}

	s, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.snap.Store(s)
	return s, nil
}

// Invalidate clears the memoized snapshot; the next Snapshot call
// recomputes it. Safe to call concurrently with readers: a reader that
// already holds a snapshot keeps a consistent view, since snapshots are
// replaced wholesale and never edited in place.
func (c *Cache) Invalidate() {
	c.snap.Store(nil)
}
