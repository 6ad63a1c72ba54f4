// Package source implements per-source bookkeeping for the archive engine:
// a logical cursor tracking bytes consumed since handoff, and the ordered
// list of containers discovered on that source so far.
//
// A State exclusively owns the seekable.Source handed to it for its
// lifetime. It is not safe for concurrent use by more than one goroutine
// at a time — the engine enforces this by exclusive borrowing, not by an
// internal lock, matching the teacher's "the engine itself holds no
// locks" design for its own subsystems.
package source

import (
	"context"
	"sync/atomic"

	"github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/seekable"
	"github.com/iamNilotpal/tomo/pkg/wire"
	"go.uber.org/zap"
)

// LoadStatus reports whether a source has more containers to discover.
type LoadStatus int

const (
	// MoreToGo means loadNextContainer succeeded and at least one more
	// byte follows; the source is not yet at EOF.
	MoreToGo LoadStatus = iota
	// EndOfSource means the source is exhausted after the container just
	// discovered.
	EndOfSource
)

func (s LoadStatus) String() string {
	switch s {
	case MoreToGo:
		return "MoreToGo"
	case EndOfSource:
		return "EndOfSource"
	default:
		return "Unknown"
	}
}

// headerAt pairs a discovered ContainerHeader with the logical offset its
// magic started at.
type headerAt struct {
	Start  int64
	Header wire.ContainerHeader
}

// State is the per-source bookkeeping the engine keeps for one registered
// seekable.Source: the logical cursor and the containers discovered on it
// so far.
type State struct {
	source seekable.Source
	log    *zap.SugaredLogger
	closed atomic.Bool

	offset  int64
	headers []headerAt
}

// New wraps src in a State ready to have loadNextContainer called on it.
// src is used exactly as positioned by the caller; logical offset zero is
// wherever src was when handed here.
func New(src seekable.Source, log *zap.SugaredLogger) *State {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &State{source: src, log: log}
}

// ContainerCount returns the number of containers discovered on this
// source so far.
func (s *State) ContainerCount() int {
	return len(s.headers)
}

// Offset returns the logical byte count consumed on this source since
// handoff.
func (s *State) Offset() int64 {
	return s.offset
}

// Source returns the underlying seekable.Source, e.g. so Tomo.Close can
// check whether it also implements io.Closer.
func (s *State) Source() seekable.Source {
	return s.source
}

// Header returns the ContainerHeader and its start offset for the i-th
// container discovered so far.
func (s *State) Header(i int) (wire.ContainerHeader, int64, bool) {
	if i < 0 || i >= len(s.headers) {
		return wire.ContainerHeader{}, 0, false
	}
	h := s.headers[i]
	return h.Header, h.Start, true
}

// Close marks the state closed. It is idempotent; subsequent calls are a
// no-op. It does not close the underlying Source — ownership of that
// resource belongs to whoever constructed it (see pkg/tomo.Tomo.Close).
func (s *State) Close() error {
	s.closed.Store(true)
	return nil
}

// Closed reports whether Close has been called.
func (s *State) Closed() bool {
	return s.closed.Load()
}

// LoadNextContainer implements spec §4.3.1's six-step algorithm: seek to
// the end of the last discovered container (or the handoff position if
// none), read and decode one ContainerHeader, skip its index+entries
// payload by seeking, record it, then probe for EOF with a single-byte
// read that is rewound if more data follows.
func (s *State) LoadNextContainer(ctx context.Context) (LoadStatus, error) {
	currentEnd := int64(0)
	if n := len(s.headers); n > 0 {
		last := s.headers[n-1]
		currentEnd = last.Start + wire.ContainerHeaderSize +
			int64(last.Header.IndexBytes) + int64(last.Header.EntriesBytes)
	}

	pending := len(s.headers) // container under discovery, for error annotation

	if delta := currentEnd - s.offset; delta != 0 {
		s.log.Debugw("seeking to next container boundary", "delta", delta, "offset", s.offset)
		if err := s.seekRelative(ctx, delta); err != nil {
			return 0, s.annotateContainer(err, pending)
		}
	}

	s.log.Debugw("reading container header", "offset", s.offset)
	buf, err := s.readExact(ctx, wire.ContainerHeaderSize)
	if err != nil {
		return 0, s.annotateContainer(err, pending)
	}

	header, _, err := wire.DecodeContainerHeader(buf, currentEnd)
	if err != nil {
		return 0, err
	}

	payload := int64(header.IndexBytes + header.EntriesBytes)
	if err := s.seekRelative(ctx, payload); err != nil {
		return 0, s.annotateContainer(err, pending)
	}

	s.headers = append(s.headers, headerAt{Start: currentEnd, Header: header})
	s.log.Debugw("container discovered",
		"start", currentEnd, "indexBytes", header.IndexBytes, "entriesBytes", header.EntriesBytes)

	// EOF probe: a single best-effort read is the portable way to
	// distinguish "more containers follow" from "clean end", since the
	// underlying source's behaviour at and past EOF is
	// implementation-defined.
	scratch := [1]byte{}
	n, err := s.source.ReadContext(ctx, scratch[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		s.log.Debugw("source exhausted", "containerCount", len(s.headers))
		return EndOfSource, nil
	}
	s.offset++
	if err := s.seekRelative(ctx, -1); err != nil {
		return 0, err
	}
	return MoreToGo, nil
}

// SeekTo performs a relative seek to the absolute logical offset target,
// which must be ≥ the position at handoff. Used by streams to jump back
// to a previously recorded container or entry offset.
func (s *State) SeekTo(ctx context.Context, target int64) error {
	return s.seekRelative(ctx, target-s.offset)
}

// ReadExact issues reads until it obtains exactly n bytes or a short read
// occurs.
func (s *State) ReadExact(ctx context.Context, n int) ([]byte, error) {
	return s.readExact(ctx, n)
}

func (s *State) seekRelative(ctx context.Context, delta int64) error {
	if delta == 0 {
		return nil
	}
	if _, err := s.source.SeekRelative(ctx, delta); err != nil {
		return s.annotate(err)
	}
	s.offset += delta
	return nil
}

func (s *State) readExact(ctx context.Context, n int) ([]byte, error) {
	buf := make([]byte, n)
	got := 0
	for got < n {
		m, err := s.source.ReadContext(ctx, buf[got:])
		if err != nil {
			return nil, s.annotate(err)
		}
		if m == 0 {
			return nil, errors.NewUnexpectedEOFError(n, got)
		}
		got += m
		s.offset += int64(m)
	}
	return buf, nil
}

// annotate attaches this State's logical offset to a SourceError surfaced
// by the underlying Source, so a caller debugging an I/O failure doesn't
// have to separately correlate it with where in the stream it happened.
func (s *State) annotate(err error) error {
	if se, ok := errors.AsSourceError(err); ok {
		return se.WithOffset(s.offset)
	}
	return err
}

// annotateContainer additionally records which container (by discovery
// order) LoadNextContainer was working on when the failure happened.
func (s *State) annotateContainer(err error, container int) error {
	err = s.annotate(err)
	if se, ok := errors.AsSourceError(err); ok {
		return se.WithContainer(container)
	}
	return err
}
