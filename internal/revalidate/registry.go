// Package revalidate tracks which rendered paths have gone stale after a
// mutation. Frontends poll or subscribe to decide what to re-fetch; the
// registry itself never touches the cache.
package revalidate

import (
	"log/slog"
	"sync"
	"time"
)

// Registry records stale paths with the time they were invalidated.
// Safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	stale map[string]time.Time
	log   *slog.Logger
	now   func() time.Time
}

// New creates an empty registry.
func New(log *slog.Logger) *Registry {
	return &Registry{
		stale: make(map[string]time.Time),
		log:   log,
		now:   time.Now,
	}
}

// Invalidate marks a path stale. Re-invalidating refreshes the timestamp.
func (r *Registry) Invalidate(path string) {
	r.mu.Lock()
	r.stale[path] = r.now()
	r.mu.Unlock()

	r.log.Debug("path invalidated", "path", path)
}

// IsStale reports whether a path is currently marked stale.
func (r *Registry) IsStale(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.stale[path]
	return ok
}

// Consume returns all stale paths with their invalidation times and clears
// the registry. Paths invalidated after the call are kept for the next one.
func (r *Registry) Consume() map[string]time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.stale
	r.stale = make(map[string]time.Time)
	return out
}
