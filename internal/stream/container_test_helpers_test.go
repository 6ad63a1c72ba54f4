package stream

import (
	"github.com/iamNilotpal/tomo/pkg/wire"
)

// buildRawEntry encodes a Raw-encoded entry (header + payload) and
// returns its bytes.
func buildRawEntry(payload []byte) []byte {
	h := wire.EntryHeader{Encoding: wire.EncodingRaw}
	return append(h.Encode(nil), payload...)
}

// buildPathsPayload builds the payload (count + lookup + paths) of a
// Paths entry, per spec.md's Paths/Attributes payload layout.
func buildPathsPayload(paths []wire.Path) []byte {
	entry := wire.PathsEntry{Lookup: wire.BuildLookup(paths), Paths: paths}
	return entry.Encode(nil)
}

// rootPath builds a simple absolute path "/name".
func rootPath(name string) wire.Path {
	return wire.Path{Segments: []wire.PathSeg{
		{Tag: wire.PathSegTagRoot},
		{Tag: wire.PathSegTagSegment, Name: []byte(name)},
	}}
}

// testEntry is one entry to place in a built container's entries region.
type testEntry struct {
	kind    wire.IndicKind
	path    uint32
	attrs   uint32
	payload []byte // Raw-encoded entry bytes (header + payload), see buildRawEntry
}

// buildContainer assembles a full container (header + index + entries)
// from a list of entries, computing each Indic's offset/length and the
// header's index_bytes/entries_bytes.
func buildContainer(mode wire.Mode, entries []testEntry) []byte {
	var entriesBlob []byte
	indics := make([]wire.Indic, len(entries))
	for i, e := range entries {
		indics[i] = wire.Indic{
			Kind:   e.kind,
			Path:   e.path,
			Attrs:  e.attrs,
			Offset: uint64(len(entriesBlob)),
			Length: uint64(len(e.payload)),
		}
		entriesBlob = append(entriesBlob, e.payload...)
	}

	var indexBlob []byte
	for _, i := range indics {
		indexBlob = i.Encode(indexBlob)
	}

	header := wire.ContainerHeader{
		Mode:         mode,
		IndexBytes:   uint64(len(indexBlob)),
		EntriesBytes: uint64(len(entriesBlob)),
	}

	buf := header.Encode(nil)
	buf = append(buf, indexBlob...)
	buf = append(buf, entriesBlob...)
	return buf
}
