package stream

import (
	"context"
	"sync/atomic"

	"github.com/iamNilotpal/tomo/internal/source"
	"github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/wire"
)

// pathsEntryCursor tracks progress through one already-opened Paths
// entry's lookup table.
type pathsEntryCursor struct {
	state        *source.State
	entryStart   int64  // absolute offset of the entry, before its EntryHeader
	payloadStart int64  // absolute offset of the entry's payload (after EntryHeader)
	length       uint64 // indic.Length: size of the whole entry, header included
	lookup       []wire.Lookup
	next         int
}

// PathsStream walks every source (registration order), every container
// within that source (on-disk discovery order), that container's single
// Paths indic (if any), and every path within that entry (on-disk order).
//
// An entry whose encoding isn't Raw fails only the Next call it was
// encountered on; the stream continues on to the next container
// afterwards, so one unsupported-encoding Paths entry never strands the
// rest of a multi-container source.
type PathsStream struct {
	sources []*source.State

	sourceIx    int
	containerIx int
	index       *IndexStream
	entry       *pathsEntryCursor
	done        atomic.Bool
}

// NewPathsStream builds a PathsStream over sources, in the order given.
func NewPathsStream(sources []*source.State) *PathsStream {
	return &PathsStream{sources: sources}
}

// Next returns the next Path in the walk described above. The returned
// bool is false only on clean completion.
func (s *PathsStream) Next(ctx context.Context) (wire.Path, bool, error) {
	if s.done.Load() {
		return wire.Path{}, false, nil
	}

	for {
		if s.entry != nil {
			if s.entry.next < len(s.entry.lookup) {
				p, err := readPathAt(ctx, s.entry, s.entry.next)
				s.entry.next++
				if err != nil {
					return wire.Path{}, false, err
				}
				return p, true, nil
			}
			s.entry = nil
		}

		st := s.currentSource()
		if st == nil {
			s.done.Store(true)
			return wire.Path{}, false, nil
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
			return wire.Path{}, false, err
		}
		if !ok {
			s.index = nil
			s.containerIx++
			continue
		}
		if indic.Kind != wire.IndicKindPaths {
			continue
		}

		header, containerStart, _ := st.Header(s.containerIx)
		entryStart := containerStart + wire.ContainerHeaderSize + int64(header.IndexBytes) + int64(indic.Offset)

		cursor, err := openPathsEntry(ctx, st, entryStart, indic.Length)
		if err != nil {
			// The structural read (locating the entry) succeeded; only
			// decoding or validating its payload failed. The indic scan
			// has already moved past this entry, so the next Next()
			// call continues with the rest of this container, or the
			// next one.
			return wire.Path{}, false, err
		}
		s.entry = cursor
	}
}

func (s *PathsStream) currentSource() *source.State {
	if s.sourceIx >= len(s.sources) {
		return nil
	}
	return s.sources[s.sourceIx]
}

// openPathsEntry implements §4.5.2 steps 1-4: seek to the entry, decode
// its EntryHeader, reject non-Raw encodings, then read the path count and
// lookup table.
func openPathsEntry(ctx context.Context, st *source.State, entryStart int64, length uint64) (*pathsEntryCursor, error) {
	if err := st.SeekTo(ctx, entryStart); err != nil {
		return nil, err
	}

	head, err := st.ReadExact(ctx, wire.EntryHeaderMinSize)
	if err != nil {
		return nil, err
	}
	headerBuf := head
	if wire.FlagsHaveParams(head[0]) {
		lenBuf, err := st.ReadExact(ctx, 2)
		if err != nil {
			return nil, err
		}
		paramsLen := int(lenBuf[0]) | int(lenBuf[1])<<8
		paramsBuf, err := st.ReadExact(ctx, paramsLen)
		if err != nil {
			return nil, err
		}
		headerBuf = append(headerBuf, lenBuf...)
		headerBuf = append(headerBuf, paramsBuf...)
	}

	entryHeader, _, err := wire.DecodeEntryHeader(headerBuf)
	if err != nil {
		return nil, err
	}
	if entryHeader.Encoding != wire.EncodingRaw {
		return nil, errors.NewUnsupportedEncodingError(uint8(entryHeader.Encoding))
	}

	payloadStart := st.Offset()

	countBuf, err := st.ReadExact(ctx, 4)
	if err != nil {
		return nil, err
	}
	count := wire.DecodeUint32(countBuf)

	lookupBuf, err := st.ReadExact(ctx, int(count)*wire.LookupSize)
	if err != nil {
		return nil, err
	}

	_, lookup, _, err := wire.DecodePathsLookupTable(append(countBuf, lookupBuf...))
	if err != nil {
		return nil, err
	}

	return &pathsEntryCursor{
		state:        st,
		entryStart:   entryStart,
		payloadStart: payloadStart,
		length:       length,
		lookup:       lookup,
	}, nil
}

// readPathAt implements §4.5.2 step 5 for a single index i: seek to the
// i-th path's recorded offset, read up to its end (the next lookup
// offset, or the entry's end for the last path), and decode it.
func readPathAt(ctx context.Context, cursor *pathsEntryCursor, i int) (wire.Path, error) {
	pathOffset := cursor.payloadStart + int64(cursor.lookup[i].Offset)

	var pathEnd int64
	if i+1 < len(cursor.lookup) {
		pathEnd = cursor.payloadStart + int64(cursor.lookup[i+1].Offset)
	} else {
		pathEnd = cursor.entryStart + int64(cursor.length)
	}

	if err := cursor.state.SeekTo(ctx, pathOffset); err != nil {
		return wire.Path{}, err
	}
	buf, err := cursor.state.ReadExact(ctx, int(pathEnd-pathOffset))
	if err != nil {
		return wire.Path{}, err
	}
	p, _, err := wire.DecodePath(buf)
	return p, err
}
