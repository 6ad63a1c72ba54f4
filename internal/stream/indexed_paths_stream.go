package stream

import (
	"context"
	"sync/atomic"

	"github.com/iamNilotpal/tomo/internal/index"
	"github.com/iamNilotpal/tomo/internal/source"
	"github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/wire"
	"github.com/cespare/xxhash/v2"
)

// IndexedPath pairs a resolved Path with an xxhash.Sum64 of its encoded
// bytes, so callers can cheaply deduplicate repeats without re-hashing at
// the call site — indexed_paths yields a Path once per indic that
// references it, so the same path may appear more than once.
type IndexedPath struct {
	Path wire.Path
	Hash uint64
}

// IndexedPathsStream walks the index of every container on every
// registered source and, for each indic with a non-zero Path field,
// resolves that reference through the container's Paths entry lookup
// table. It may yield the same path more than once when several indics
// share it, exactly as spec'd.
type IndexedPathsStream struct {
	sources []*source.State

	sourceIx    int
	containerIx int
	index       *IndexStream
	cache       *index.Cache // container Paths-entry resolutions, keyed by (source, container)
	done        atomic.Bool
}

// NewIndexedPathsStream builds an IndexedPathsStream over sources, in the
// order given, backed by a private index.Cache. Use
// NewIndexedPathsStreamWithCache to share resolutions across multiple
// streams instead.
func NewIndexedPathsStream(sources []*source.State) *IndexedPathsStream {
	return NewIndexedPathsStreamWithCache(sources, index.New(nil))
}

// NewIndexedPathsStreamWithCache builds an IndexedPathsStream over sources
// that consults and populates cache, so that two streams sharing a cache
// never decode the same container's Paths entry twice.
func NewIndexedPathsStreamWithCache(sources []*source.State, cache *index.Cache) *IndexedPathsStream {
	return &IndexedPathsStream{sources: sources, cache: cache}
}

// Next returns the next resolved IndexedPath. The returned bool is false
// only on clean completion.
func (s *IndexedPathsStream) Next(ctx context.Context) (IndexedPath, bool, error) {
	if s.done.Load() {
		return IndexedPath{}, false, nil
	}

	for {
		st := s.currentSource()
		if st == nil {
			s.done.Store(true)
			return IndexedPath{}, false, nil
		}

		if s.index == nil {
			if _, _, ok := st.Header(s.containerIx); !ok {
				s.sourceIx++
				s.containerIx = 0
				continue
			}
			s.index = NewIndexStream(st, s.containerIx)
		}

		indic, ok, err := s.index.Next(ctx)
		if err != nil {
			return IndexedPath{}, false, err
		}
		if !ok {
			s.index = nil
			s.containerIx++
			continue
		}
		if !indic.HasPath() {
			continue
		}

		entry, err := s.resolvePathsEntry(ctx, st, s.containerIx)
		if err != nil {
			return IndexedPath{}, false, err
		}

		p, ok := entry.ByIndex[indic.Path]
		if !ok {
			return IndexedPath{}, false, errors.NewCorruptContainerError(
				"indic: path references a lookup index absent from its container's Paths entry")
		}
		buf := p.Encode(nil)
		return IndexedPath{Path: p, Hash: xxhash.Sum64(buf)}, true, nil
	}
}

func (s *IndexedPathsStream) currentSource() *source.State {
	if s.sourceIx >= len(s.sources) {
		return nil
	}
	return s.sources[s.sourceIx]
}

// resolvePathsEntry finds and decodes the container's Paths entry (there
// is at most one), consulting and populating s.cache so repeated indic
// references within the same container — or a second stream sharing the
// same cache — don't re-read the entry from the source.
func (s *IndexedPathsStream) resolvePathsEntry(ctx context.Context, st *source.State, container int) (*index.Entry, error) {
	key := index.Key{Source: st, Container: container}
	if cached, ok, err := s.cache.Get(key); err != nil {
		return nil, err
	} else if ok {
		return cached, nil
	}

	header, containerStart, _ := st.Header(container)
	scan := NewIndexStream(st, container)
	for {
		indic, ok, err := scan.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			empty := &index.Entry{ByIndex: map[uint32]wire.Path{}}
			if err := s.cache.Put(key, empty); err != nil {
				return nil, err
			}
			return empty, nil
		}
		if indic.Kind != wire.IndicKindPaths {
			continue
		}

		entryStart := containerStart + wire.ContainerHeaderSize + int64(header.IndexBytes) + int64(indic.Offset)
		cursor, err := openPathsEntry(ctx, st, entryStart, indic.Length)
		if err != nil {
			return nil, err
		}

		byIndex := make(map[uint32]wire.Path, len(cursor.lookup))
		for i, l := range cursor.lookup {
			p, err := readPathAt(ctx, cursor, i)
			if err != nil {
				return nil, err
			}
			byIndex[l.Index] = p
		}

		resolved := &index.Entry{ByIndex: byIndex}
		if err := s.cache.Put(key, resolved); err != nil {
			return nil, err
		}
		return resolved, nil
	}
}
