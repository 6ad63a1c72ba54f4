package seekable

import (
	"context"
	"io"

	tomoerrors "github.com/iamNilotpal/tomo/pkg/errors"
)

// readSeekerSource adapts any io.ReadSeeker into a Source. It is the
// adapter most callers reach for: files, bytes.Reader, and anything else
// the standard library already knows how to seek.
type readSeekerSource struct {
	rs io.ReadSeeker
}

// FromReadSeeker wraps rs as a Source. rs is used exactly as positioned by
// the caller; Tomo never seeks it to an absolute offset.
func FromReadSeeker(rs io.ReadSeeker) Source {
	return &readSeekerSource{rs: rs}
}

func (s *readSeekerSource) ReadContext(ctx context.Context, buf []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, tomoerrors.NewBaseSourceIOError(err)
	}
	n, err := s.rs.Read(buf)
	if err != nil && err != io.EOF {
		return n, tomoerrors.NewBaseSourceIOError(err)
	}
	if err == io.EOF {
		return n, nil
	}
	return n, nil
}

func (s *readSeekerSource) SeekRelative(ctx context.Context, delta int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, tomoerrors.NewBaseSourceIOError(err)
	}
	pos, err := s.rs.Seek(delta, io.SeekCurrent)
	if err != nil {
		return 0, tomoerrors.NewBaseSourceIOError(err)
	}
	return pos, nil
}

// Close closes the wrapped io.ReadSeeker if it also implements io.Closer
// (e.g. an *os.File), so pkg/tomo.Tomo.Close can release file descriptors
// for sources that have one without every Source implementation needing
// to declare Close itself.
func (s *readSeekerSource) Close() error {
	if closer, ok := s.rs.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
