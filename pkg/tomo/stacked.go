package tomo

import (
	"context"
	"fmt"

	"github.com/iamNilotpal/tomo/pkg/filesys"
	"github.com/iamNilotpal/tomo/pkg/seekable"
	"github.com/iamNilotpal/tomo/pkg/seginfo"
)

// LoadStackedParts discovers every part of the archive family named prefix
// under dir (pkg/seginfo.DiscoverParts) and loads each one, in ascending
// sequence-number order, the load order Stacked mode requires so a later
// part's entries win over an earlier part's on a path conflict. An empty
// dir resolves to the current working directory via pkg/filesys.Pwd.
//
// Each part is opened with pkg/filesys.Open and handed to Load; the
// resulting *os.File is closed by Tomo.Close via the io.Closer path
// pkg/seekable.FromReadSeeker wires through.
func (t *Tomo) LoadStackedParts(ctx context.Context, dir, prefix string) error {
	if dir == "" {
		wd, err := filesys.Pwd()
		if err != nil {
			return err
		}
		dir = wd
	}

	if ok, err := filesys.Exists(dir); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("tomo: archive directory %q does not exist", dir)
	}

	parts, err := seginfo.DiscoverParts(dir, prefix)
	if err != nil {
		return err
	}

	for _, path := range parts {
		f, err := filesys.Open(path)
		if err != nil {
			return err
		}
		if _, err := t.Load(ctx, seekable.FromReadSeeker(f)); err != nil {
			return err
		}
	}
	return nil
}
