// Package engine coordinates the archive façade's internal state: the
// ordered list of registered source.States and the bulk/one-shot load
// operations driven across them.
//
// The engine itself holds no locks over the work it does on a single
// source — per spec, its invariants are preserved by exclusive borrowing
// of the source.State for the duration of each operation. The mutex here
// only protects the slice of sources against concurrent registration from
// different goroutines.
package engine

import (
	"context"
	"sync"

	"github.com/iamNilotpal/tomo/internal/source"
	tomoerrors "github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/seekable"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Engine aggregates every source.State registered with a Tomo instance.
type Engine struct {
	mu      sync.Mutex
	log     *zap.SugaredLogger
	sources []*source.State
}

// Config holds the parameters needed to construct an Engine.
type Config struct {
	Logger *zap.SugaredLogger
}

// New creates an empty Engine.
func New(config *Config) *Engine {
	log := zap.NewNop().Sugar()
	if config != nil && config.Logger != nil {
		log = config.Logger
	}
	return &Engine{log: log}
}

// AddSource registers src as a new source.State. It does not load any
// containers; callers drive loading via Load or LoadOne.
func (e *Engine) AddSource(src seekable.Source) *source.State {
	st, _ := e.addSource(src)
	return st
}

// addSource registers src and also reports its position in the
// registration order, so callers can annotate errors with WithSourceIndex.
func (e *Engine) addSource(src seekable.Source) (*source.State, int) {
	st := source.New(src, e.log)

	e.mu.Lock()
	idx := len(e.sources)
	e.sources = append(e.sources, st)
	e.mu.Unlock()

	return st, idx
}

// indexOf returns st's position in the registration order, or -1 if st is
// not registered on this Engine.
func (e *Engine) indexOf(st *source.State) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, s := range e.sources {
		if s == st {
			return i
		}
	}
	return -1
}

// annotateSourceIndex records which registered source a LoadNextContainer
// failure came from, so a caller juggling several sources doesn't have to
// separately figure out which one failed.
func annotateSourceIndex(err error, idx int) error {
	if se, ok := tomoerrors.AsSourceError(err); ok {
		return se.WithSourceIndex(idx)
	}
	return err
}

// Load registers src and invokes loadNextContainer repeatedly until the
// source reports EndOfSource. May block indefinitely on an unbounded
// source with no EOF — callers that supply such a source must use LoadOne
// instead.
func (e *Engine) Load(ctx context.Context, src seekable.Source) (*source.State, error) {
	st, idx := e.addSource(src)
	for {
		status, err := st.LoadNextContainer(ctx)
		if err != nil {
			return st, annotateSourceIndex(err, idx)
		}
		if status == source.EndOfSource {
			return st, nil
		}
	}
}

// LoadOne registers src and invokes loadNextContainer exactly once.
func (e *Engine) LoadOne(ctx context.Context, src seekable.Source) (*source.State, source.LoadStatus, error) {
	st, idx := e.addSource(src)
	status, err := st.LoadNextContainer(ctx)
	return st, status, annotateSourceIndex(err, idx)
}

// LoadNextContainer advances an already-registered source.State by one
// container. Used by callers that obtained a *source.State from LoadOne
// and want to continue it.
func (e *Engine) LoadNextContainer(ctx context.Context, st *source.State) (source.LoadStatus, error) {
	status, err := st.LoadNextContainer(ctx)
	if err != nil {
		return status, annotateSourceIndex(err, e.indexOf(st))
	}
	return status, nil
}

// ContainerCount returns the number of containers discovered across every
// registered source.
func (e *Engine) ContainerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0
	for _, st := range e.sources {
		total += st.ContainerCount()
	}
	return total
}

// Sources returns a snapshot of every registered source.State, in
// registration order.
func (e *Engine) Sources() []*source.State {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*source.State, len(e.sources))
	copy(out, e.sources)
	return out
}

// Close closes every registered source.State, continuing past individual
// failures and returning every one of them combined via multierr rather
// than stopping at the first.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	for _, st := range e.sources {
		err = multierr.Append(err, st.Close())
	}
	return err
}
