// Package seekable defines the minimal capability the archive engine needs
// from a caller-supplied byte source: context-aware reads and relative
// seeks. It never reads an entry payload speculatively and never seeks
// absolute — the engine treats wherever the source was positioned at
// handoff as logical offset zero.
package seekable
