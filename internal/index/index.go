// Package index provides a small in-memory cache mapping a (source,
// container) pair to that container's fully-resolved Paths entry: the
// declared-Index -> Path table internal/stream builds once per container
// when resolving indic.Path references.
//
// Without this cache, two independent streams over the same sources (e.g.
// calling Tomo.IndexedPaths twice) each decode every container's Paths
// entry from scratch. The cache lets them share that work, the same way
// the teacher's index kept all keys in memory for O(1) lookup instead of
// re-scanning segments on every read.
package index

import (
	stdErrors "errors"

	"go.uber.org/zap"
)

// ErrCacheClosed is returned by Get/Put once Close has been called.
var ErrCacheClosed = stdErrors.New("operation failed: cannot access closed index cache")

// New creates an empty Cache ready for concurrent use.
func New(config *Config) *Cache {
	log := zap.NewNop().Sugar()
	if config != nil && config.Logger != nil {
		log = config.Logger
	}
	return &Cache{log: log, entries: make(map[Key]*Entry, 64)}
}

// Get returns the cached Entry for key, if any.
func (c *Cache) Get(key Key) (*Entry, bool, error) {
	if c.closed.Load() {
		return nil, false, ErrCacheClosed
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok, nil
}

// Put records e as the resolved Entry for key, replacing any previous
// value.
func (c *Cache) Put(key Key, e *Entry) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = e
	return nil
}

// Close releases the cache's memory. It is idempotent; a second call
// returns ErrCacheClosed, matching the teacher's own index lifecycle.
func (c *Cache) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrCacheClosed
	}

	c.log.Infow("closing path cache")
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.entries = nil
	return nil
}
