package tomo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/tomo/pkg/seginfo"
	"github.com/iamNilotpal/tomo/pkg/wire"
	"github.com/stretchr/testify/require"
)

func TestLoadStackedPartsOrdersAscending(t *testing.T) {
	dir := t.TempDir()

	c1 := buildContainer(wire.ModeStacked, []testEntry{
		{kind: wire.IndicKindPaths, payload: buildRawEntry(buildPathsPayload([]wire.Path{rootPath("first")}))},
	})
	c2 := buildContainer(wire.ModeStacked, []testEntry{
		{kind: wire.IndicKindPaths, payload: buildRawEntry(buildPathsPayload([]wire.Path{rootPath("second")}))},
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, seginfo.GeneratePartName(2, "pack")), c2, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, seginfo.GeneratePartName(1, "pack")), c1, 0o644))

	tm := New()
	ctx := context.Background()
	require.NoError(t, tm.LoadStackedParts(ctx, dir, "pack"))
	require.Equal(t, 2, tm.ContainerCount())

	var got []string
	ps := tm.AllPaths()
	for {
		p, ok, err := ps.Next(ctx)
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, p.String())
	}
	require.Equal(t, []string{"/first", "/second"}, got)

	require.NoError(t, tm.Close())
}

func TestLoadStackedPartsMissingDir(t *testing.T) {
	tm := New()
	err := tm.LoadStackedParts(context.Background(), filepath.Join(t.TempDir(), "nope"), "pack")
	require.Error(t, err)
}
