package index

import (
	"sync"
	"sync/atomic"

	"github.com/iamNilotpal/tomo/internal/source"
	"github.com/iamNilotpal/tomo/pkg/wire"
	"go.uber.org/zap"
)

// Key identifies one container's resolved Paths entry: the source it was
// discovered on, plus its container index within that source.
type Key struct {
	Source    *source.State
	Container int
}

// Entry is the resolved Paths entry for one container: every declared
// Lookup.Index mapped to its Path, matching internal/stream's resolution
// rule that a Lookup's declared index need not equal its table position.
type Entry struct {
	ByIndex map[uint32]wire.Path
}

// Cache is a concurrency-safe Key -> Entry map.
type Cache struct {
	log     *zap.SugaredLogger
	mu      sync.RWMutex
	entries map[Key]*Entry
	closed  atomic.Bool
}

// Config holds the parameters needed to construct a Cache.
type Config struct {
	Logger *zap.SugaredLogger
}
