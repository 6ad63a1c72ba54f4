// Package seginfo names and orders the on-disk parts of a multi-part
// archive.
//
// Filename format: prefix.NNNNN.tomo
//
// Where:
//   - prefix: a configurable string identifying the archive family.
//   - NNNNN: a zero-padded 5-digit sequence number (00001, 00002, ...).
//   - .tomo: the fixed container file extension.
//
// In Stacked mode the part with the highest sequence number is loaded
// last and therefore wins on any path conflict with earlier parts;
// DiscoverParts returns paths in the load order the façade should use.
package seginfo

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/iamNilotpal/tomo/pkg/filesys"
)

// DiscoverParts finds every part of the archive family named `prefix`
// under dir and returns their paths sorted by ascending sequence number,
// i.e. in the order Stacked mode should load them.
func DiscoverParts(dir, prefix string) ([]string, error) {
	if dir == "" || prefix == "" {
		return nil, fmt.Errorf("both dir and prefix must be non-empty")
	}

	pattern := filepath.Join(dir, prefix+".*.tomo")
	matches, err := filesys.ReadDir(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive directory with pattern %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	// Zero-padded sequence numbers make lexicographic order equal to
	// numeric order, same trick the rest of the corpus relies on for
	// its own sequential file naming.
	slices.Sort(matches)
	return matches, nil
}

// GeneratePartName builds the filename for part `id` of an archive family.
func GeneratePartName(id uint64, prefix string) string {
	return fmt.Sprintf("%s.%05d.tomo", prefix, id)
}

// ParsePartID extracts the sequence number from a part filename produced
// by GeneratePartName.
func ParsePartID(fullPath, prefix string) (uint64, error) {
	_, filename := filepath.Split(fullPath)

	if !strings.HasPrefix(filename, prefix+".") {
		return 0, fmt.Errorf("filename %s does not start with expected prefix %s", filename, prefix)
	}
	if !strings.HasSuffix(filename, ".tomo") {
		return 0, fmt.Errorf("filename %s does not have the expected .tomo extension", filename)
	}

	middle := strings.TrimSuffix(strings.TrimPrefix(filename, prefix+"."), ".tomo")
	id, err := strconv.ParseUint(middle, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse part ID %q as integer: %w", middle, err)
	}
	return id, nil
}
