package seekable

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromReadSeekerReadAndSeek(t *testing.T) {
	data := []byte("hello, tomo archive")
	src := FromReadSeeker(bytes.NewReader(data))
	ctx := context.Background()

	buf := make([]byte, 5)
	n, err := src.ReadContext(ctx, buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(buf[:n]))

	pos, err := src.SeekRelative(ctx, 2)
	require.NoError(t, err)
	require.EqualValues(t, 7, pos)

	n, err = src.ReadContext(ctx, buf)
	require.NoError(t, err)
	require.Equal(t, "tomo ", string(buf[:n]))
}

func TestFromReadSeekerEOF(t *testing.T) {
	src := FromReadSeeker(bytes.NewReader([]byte("ab")))
	ctx := context.Background()

	buf := make([]byte, 2)
	n, err := src.ReadContext(ctx, buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = src.ReadContext(ctx, buf)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestFromReadSeekerCancelledContext(t *testing.T) {
	src := FromReadSeeker(bytes.NewReader([]byte("ab")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.ReadContext(ctx, make([]byte, 1))
	require.Error(t, err)

	_, err = src.SeekRelative(ctx, 1)
	require.Error(t, err)
}
