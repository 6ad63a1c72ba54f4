package stream

import (
	"context"
	"testing"

	"github.com/iamNilotpal/tomo/internal/source"
	"github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/wire"
	"github.com/stretchr/testify/require"
)

func drainIndexedPaths(t *testing.T, s *IndexedPathsStream) ([]IndexedPath, error) {
	t.Helper()
	ctx := context.Background()
	var out []IndexedPath
	for {
		p, ok, err := s.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, p)
	}
}

func TestIndexedPathsStreamResolvesFileIndics(t *testing.T) {
	paths := []wire.Path{rootPath("a"), rootPath("b")}
	pathsEntry := buildRawEntry(buildPathsPayload(paths))

	data := buildContainer(wire.ModeStacked, []testEntry{
		{kind: wire.IndicKindFile, path: 1, payload: buildRawEntry([]byte("file-a-contents"))},
		{kind: wire.IndicKindFile, path: 2, payload: buildRawEntry([]byte("file-b-contents"))},
		{kind: wire.IndicKindPaths, payload: pathsEntry},
	})
	st := newLoadedState(t, data)

	s := NewIndexedPathsStream([]*source.State{st})
	got, err := drainIndexedPaths(t, s)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "/a", got[0].Path.String())
	require.Equal(t, "/b", got[1].Path.String())
	require.NotZero(t, got[0].Hash)
	require.NotEqual(t, got[0].Hash, got[1].Hash)
}

func TestIndexedPathsStreamSkipsAbsentPath(t *testing.T) {
	data := buildContainer(wire.ModeStacked, []testEntry{
		{kind: wire.IndicKindDir, path: 0, payload: buildRawEntry(nil)},
	})
	st := newLoadedState(t, data)

	s := NewIndexedPathsStream([]*source.State{st})
	got, err := drainIndexedPaths(t, s)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestIndexedPathsStreamUnresolvableIndexIsCorrupt(t *testing.T) {
	paths := []wire.Path{rootPath("a")}
	pathsEntry := buildRawEntry(buildPathsPayload(paths))

	data := buildContainer(wire.ModeStacked, []testEntry{
		{kind: wire.IndicKindFile, path: 7, payload: buildRawEntry([]byte("file-a-contents"))},
		{kind: wire.IndicKindPaths, payload: pathsEntry},
	})
	st := newLoadedState(t, data)

	s := NewIndexedPathsStream([]*source.State{st})
	_, err := drainIndexedPaths(t, s)
	require.Error(t, err)
	_, ok := errors.AsContainerError(err)
	require.True(t, ok)
}

func TestIndexedPathsStreamDuplicateReferences(t *testing.T) {
	paths := []wire.Path{rootPath("shared")}
	pathsEntry := buildRawEntry(buildPathsPayload(paths))

	data := buildContainer(wire.ModeStacked, []testEntry{
		{kind: wire.IndicKindFile, path: 1, payload: buildRawEntry([]byte("one"))},
		{kind: wire.IndicKindFile, path: 1, payload: buildRawEntry([]byte("two"))},
		{kind: wire.IndicKindPaths, payload: pathsEntry},
	})
	st := newLoadedState(t, data)

	s := NewIndexedPathsStream([]*source.State{st})
	got, err := drainIndexedPaths(t, s)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "/shared", got[0].Path.String())
	require.Equal(t, "/shared", got[1].Path.String())
	require.Equal(t, got[0].Hash, got[1].Hash)
}
