package source

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/seekable"
	"github.com/iamNilotpal/tomo/pkg/wire"
	"github.com/stretchr/testify/require"
)

// failingReadSeeker fails every Read after the first n bytes, simulating a
// caller-supplied source that misbehaves partway through a container.
type failingReadSeeker struct {
	data []byte
	pos  int
	failAfter int
}

func (f *failingReadSeeker) Read(p []byte) (int, error) {
	if f.pos >= f.failAfter {
		return 0, io.ErrClosedPipe
	}
	n := copy(p, f.data[f.pos:min(f.failAfter, len(f.data))])
	f.pos += n
	return n, nil
}

func (f *failingReadSeeker) Seek(offset int64, whence int) (int64, error) {
	var base int
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = f.pos
	case io.SeekEnd:
		base = len(f.data)
	}
	f.pos = base + int(offset)
	return int64(f.pos), nil
}

func emptyContainer() []byte {
	h := wire.ContainerHeader{Mode: wire.ModeStacked}
	return h.Encode(nil)
}

func newState(t *testing.T, data []byte) *State {
	t.Helper()
	src := seekable.FromReadSeeker(bytes.NewReader(data))
	return New(src, nil)
}

func TestLoadNextContainerSingleEmpty(t *testing.T) {
	st := newState(t, emptyContainer())
	ctx := context.Background()

	status, err := st.LoadNextContainer(ctx)
	require.NoError(t, err)
	require.Equal(t, EndOfSource, status)
	require.Equal(t, 1, st.ContainerCount())
	require.EqualValues(t, wire.ContainerHeaderSize, st.Offset())

	header, start, ok := st.Header(0)
	require.True(t, ok)
	require.Zero(t, start)
	require.Equal(t, wire.ModeStacked, header.Mode)
}

func TestLoadNextContainerTwoConcatenated(t *testing.T) {
	data := append(emptyContainer(), emptyContainer()...)
	st := newState(t, data)
	ctx := context.Background()

	status, err := st.LoadNextContainer(ctx)
	require.NoError(t, err)
	require.Equal(t, MoreToGo, status)
	require.Equal(t, 1, st.ContainerCount())

	status, err = st.LoadNextContainer(ctx)
	require.NoError(t, err)
	require.Equal(t, EndOfSource, status)
	require.Equal(t, 2, st.ContainerCount())
}

func TestLoadNextContainerNotAContainer(t *testing.T) {
	data := emptyContainer()
	data[0] = 0xFF
	st := newState(t, data)

	_, err := st.LoadNextContainer(context.Background())
	require.Error(t, err)
	ce, ok := errors.AsContainerError(err)
	require.True(t, ok)
	require.EqualValues(t, 0, ce.Offset())
	require.Equal(t, 0, st.ContainerCount())
}

func TestLoadNextContainerShortRead(t *testing.T) {
	data := emptyContainer()[:20]
	st := newState(t, data)

	_, err := st.LoadNextContainer(context.Background())
	require.Error(t, err)
	ce, ok := errors.AsContainerError(err)
	require.True(t, ok)
	require.Equal(t, wire.ContainerHeaderSize, ce.Expected())
	require.Equal(t, 20, ce.Obtained())
}

func TestLoadNextContainerAnnotatesSourceError(t *testing.T) {
	data := append(emptyContainer(), emptyContainer()...)
	src := seekable.FromReadSeeker(&failingReadSeeker{data: data, failAfter: len(data) - 2})
	st := New(src, nil)
	ctx := context.Background()

	_, err := st.LoadNextContainer(ctx)
	require.NoError(t, err)

	_, err = st.LoadNextContainer(ctx)
	require.Error(t, err)

	se, ok := errors.AsSourceError(err)
	require.True(t, ok)
	require.EqualValues(t, len(data)-2, se.Offset())
	require.Equal(t, 1, se.Container())
}

func TestReadExactAndSeekTo(t *testing.T) {
	st := newState(t, []byte("abcdefgh"))
	ctx := context.Background()

	buf, err := st.ReadExact(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, "abcd", string(buf))
	require.EqualValues(t, 4, st.Offset())

	require.NoError(t, st.SeekTo(ctx, 2))
	require.EqualValues(t, 2, st.Offset())

	buf, err = st.ReadExact(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "cd", string(buf))
}
