// Package tomo is the public entry point for reading Tomo archives: lazy,
// seek-driven access to one or more containers concatenated on a
// caller-supplied seekable.Source.
package tomo

import (
	"context"
	"io"
	"sync"

	"github.com/iamNilotpal/tomo/internal/engine"
	"github.com/iamNilotpal/tomo/internal/index"
	"github.com/iamNilotpal/tomo/internal/source"
	"github.com/iamNilotpal/tomo/internal/stream"
	"github.com/iamNilotpal/tomo/pkg/options"
	"github.com/iamNilotpal/tomo/pkg/seekable"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Tomo is a handle over zero or more registered sources. It has no
// exported fields; construct one with New and register sources with Load
// or LoadOne.
type Tomo struct {
	mu         sync.Mutex
	options    options.Options
	engine     *engine.Engine
	pathsCache *index.Cache // shared across every IndexedPaths() call
}

// New builds a Tomo with the given options applied over the defaults
// (options.NewDefaultOptions): no logger — falling back to
// zap.NewNop().Sugar(), since a library must not force logging
// configuration on its caller — and an empty decoder registry.
func New(opts ...options.OptionFunc) *Tomo {
	o := options.NewDefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := o.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
		o.Logger = log
	}

	return &Tomo{
		options:    o,
		engine:     engine.New(&engine.Config{Logger: log}),
		pathsCache: index.New(&index.Config{Logger: log}),
	}
}

// Options returns the fully-resolved Options this Tomo was built with
// (including the zap.NewNop() fallback if none was supplied), for callers
// that want to inspect or share the decoder registry.
func (t *Tomo) Options() options.Options {
	return t.options
}

// Load registers src and discovers every container on it, blocking until
// EndOfSource. It may block indefinitely on an unbounded source with no
// natural end; callers needing bounded progress should use LoadOne
// instead.
func (t *Tomo) Load(ctx context.Context, src seekable.Source) (*source.State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.Load(ctx, src)
}

// LoadOne registers src and discovers exactly one container on it. Callers
// that want to continue past the first container call LoadNextContainer
// with the returned *source.State.
func (t *Tomo) LoadOne(ctx context.Context, src seekable.Source) (*source.State, source.LoadStatus, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.LoadOne(ctx, src)
}

// LoadNextContainer advances an already-registered source.State (obtained
// from LoadOne) by exactly one more container.
func (t *Tomo) LoadNextContainer(ctx context.Context, st *source.State) (source.LoadStatus, error) {
	return t.engine.LoadNextContainer(ctx, st)
}

// ContainerCount returns the number of containers discovered across every
// registered source so far.
func (t *Tomo) ContainerCount() int {
	return t.engine.ContainerCount()
}

// AllPaths returns a PathsStream walking every Paths entry across every
// registered source, in registration then on-disk order. The stream
// reflects the sources registered at the time AllPaths is called; sources
// registered afterward are not picked up by an already-constructed stream.
func (t *Tomo) AllPaths() *stream.PathsStream {
	return stream.NewPathsStream(t.engine.Sources())
}

// IndexedPaths returns an IndexedPathsStream resolving every indic's path
// reference across every registered source. It may yield the same path
// more than once when several indics reference it.
func (t *Tomo) IndexedPaths() *stream.IndexedPathsStream {
	return stream.NewIndexedPathsStreamWithCache(t.engine.Sources(), t.pathsCache)
}

// IndexOf returns an IndexStream walking the indic records of the
// container-th container discovered on st.
func (t *Tomo) IndexOf(st *source.State, container int) *stream.IndexStream {
	return stream.NewIndexStream(st, container)
}

// Close closes every registered source.State and, for any underlying
// seekable.Source that also implements io.Closer, closes that too —
// combining every failure encountered via multierr rather than stopping
// at the first, so one bad source never masks a cleanup failure on
// another.
func (t *Tomo) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var err error
	for _, st := range t.engine.Sources() {
		if closer, ok := st.Source().(io.Closer); ok {
			err = multierr.Append(err, closer.Close())
		}
	}
	err = multierr.Append(err, t.engine.Close())
	err = multierr.Append(err, t.pathsCache.Close())
	return err
}
