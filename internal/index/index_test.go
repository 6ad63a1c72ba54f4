package index

import (
	"bytes"
	"context"
	"testing"

	"github.com/iamNilotpal/tomo/internal/source"
	"github.com/iamNilotpal/tomo/pkg/seekable"
	"github.com/iamNilotpal/tomo/pkg/wire"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *source.State {
	t.Helper()
	header := wire.ContainerHeader{Mode: wire.ModeStacked}
	buf := header.Encode(nil)
	src := seekable.FromReadSeeker(bytes.NewReader(buf))
	st := source.New(src, nil)
	_, err := st.LoadNextContainer(context.Background())
	require.NoError(t, err)
	return st
}

func TestCacheGetPutRoundTrip(t *testing.T) {
	c := New(nil)
	st := newTestState(t)
	key := Key{Source: st, Container: 0}

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	require.False(t, ok)

	entry := &Entry{ByIndex: map[uint32]wire.Path{1: {}}}
	require.NoError(t, c.Put(key, entry))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Same(t, entry, got)
}

func TestCacheKeysDistinguishSource(t *testing.T) {
	c := New(nil)
	st1 := newTestState(t)
	st2 := newTestState(t)

	require.NoError(t, c.Put(Key{Source: st1, Container: 0}, &Entry{}))

	_, ok, err := c.Get(Key{Source: st2, Container: 0})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Close())
	require.ErrorIs(t, c.Close(), ErrCacheClosed)

	_, _, err := c.Get(Key{})
	require.ErrorIs(t, err, ErrCacheClosed)

	err = c.Put(Key{}, &Entry{})
	require.ErrorIs(t, err, ErrCacheClosed)
}
