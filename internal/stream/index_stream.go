// Package stream implements the lazy, on-demand iterators layered over
// internal/engine and internal/source: IndexStream walks one container's
// index, PathsStream walks every Paths entry across every registered
// source, and IndexedPathsStream resolves each indic's path reference
// through its container's Paths entry lookup table.
//
// Every stream here holds integer cursors (source index, container index,
// bytes-left) rather than direct references into another stream's state,
// per the archive engine's "no in-memory pointer graph" design note —
// that keeps a stream trivially resumable by index and safe across Go's
// GC, the same reason the teacher's internal/index favors plain offsets
// over synthesized pointers.
package stream

import (
	"context"
	"sync/atomic"

	"github.com/iamNilotpal/tomo/internal/source"
	"github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/wire"
)

// IndexStream walks the on-disk indic records of one container, in
// on-disk order. It is bound to a single (source.State, container index)
// pair, finite, and not restartable.
type IndexStream struct {
	state     *source.State
	container int

	inited       bool
	done         atomic.Bool
	bytesLeft    uint64
	entriesBytes uint64
	seenSpecial  map[wire.IndicKind]bool // at most one Paths/Attributes/Checksums/Signatures per container
}

// NewIndexStream binds an IndexStream to the container-th container
// discovered on state.
func NewIndexStream(state *source.State, container int) *IndexStream {
	return &IndexStream{state: state, container: container}
}

// Next returns the next Indic in on-disk order. The returned bool is false
// only on clean completion; a second call after completion keeps
// returning false, nil.
func (s *IndexStream) Next(ctx context.Context) (wire.Indic, bool, error) {
	if s.done.Load() {
		return wire.Indic{}, false, nil
	}

	if !s.inited {
		header, start, ok := s.state.Header(s.container)
		if !ok {
			s.done.Store(true)
			return wire.Indic{}, false, nil
		}
		if err := s.state.SeekTo(ctx, start+wire.ContainerHeaderSize); err != nil {
			return wire.Indic{}, false, err
		}
		s.bytesLeft = header.IndexBytes
		s.entriesBytes = header.EntriesBytes
		s.seenSpecial = make(map[wire.IndicKind]bool, 4)
		s.inited = true
	}

	if s.bytesLeft == 0 {
		s.done.Store(true)
		return wire.Indic{}, false, nil
	}

	// Other readers of the same source (a Paths entry being resolved
	// between two indics) may have moved it, so seek back to this
	// stream's own next indic before every read.
	header, start, _ := s.state.Header(s.container)
	next := start + wire.ContainerHeaderSize + int64(header.IndexBytes-s.bytesLeft)
	if err := s.state.SeekTo(ctx, next); err != nil {
		return wire.Indic{}, false, err
	}

	buf, err := s.state.ReadExact(ctx, wire.IndicSize)
	if err != nil {
		return wire.Indic{}, false, err
	}
	indic, _, err := wire.DecodeIndic(buf)
	if err != nil {
		return wire.Indic{}, false, err
	}
	if indic.Offset > s.entriesBytes || indic.Length > s.entriesBytes-indic.Offset {
		return wire.Indic{}, false, errors.NewCorruptContainerError(
			"indic: offset+length outside the container's entries region")
	}
	if indic.Kind.Special() {
		if s.seenSpecial[indic.Kind] {
			return wire.Indic{}, false, errors.NewCorruptContainerError(
				"indic: duplicate "+indic.Kind.String()+" indic in one container")
		}
		s.seenSpecial[indic.Kind] = true
	}
	s.bytesLeft -= wire.IndicSize
	return indic, true, nil
}
