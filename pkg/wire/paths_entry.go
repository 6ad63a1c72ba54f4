package wire

// PathsEntry is the full decoded payload of a Paths entry: a count, its
// lookup table, and the paths themselves in on-disk order.
type PathsEntry struct {
	Lookup []Lookup
	Paths  []Path
}

// DecodePathsLookupTable decodes just the leading count:u32 and lookup
// table of a Paths entry's payload, without touching the path data that
// follows. Streams that need to jump to a single path by index use this
// instead of decoding the whole entry.
func DecodePathsLookupTable(buf []byte) (count uint32, table []Lookup, consumed int, err error) {
	if len(buf) < 4 {
		return 0, nil, 0, errShort("PathsEntry.count", 4, len(buf))
	}
	count = getU32(buf[0:4])
	n := 4
	tableBytes := int(count) * LookupSize
	if len(buf) < n+tableBytes {
		return 0, nil, 0, errShort("PathsEntry.lookup", n+tableBytes, len(buf))
	}
	table = make([]Lookup, count)
	for i := uint32(0); i < count; i++ {
		l, consumed, decErr := DecodeLookup(buf[n:])
		if decErr != nil {
			return 0, nil, 0, decErr
		}
		table[i] = l
		n += consumed
	}
	if err := validateLookupMonotonic("PathsEntry.lookup", table); err != nil {
		return 0, nil, 0, err
	}
	return count, table, n, nil
}

// DecodePathsEntry decodes the whole of a Paths entry's payload, lookup
// table and paths alike. Used when draining an entry sequentially rather
// than seeking to a single indexed path.
func DecodePathsEntry(buf []byte) (PathsEntry, int, error) {
	count, table, n, err := DecodePathsLookupTable(buf)
	if err != nil {
		return PathsEntry{}, 0, err
	}
	paths := make([]Path, 0, count)
	for i := uint32(0); i < count; i++ {
		p, consumed, decErr := DecodePath(buf[n:])
		if decErr != nil {
			return PathsEntry{}, 0, decErr
		}
		paths = append(paths, p)
		n += consumed
	}
	return PathsEntry{Lookup: table, Paths: paths}, n, nil
}

// Encode appends the on-wire bytes of e to dst. The lookup table offsets
// must already be set correctly by the caller (measured from the start of
// this payload); Encode does not recompute them.
func (e PathsEntry) Encode(dst []byte) []byte {
	dst = putU32(dst, uint32(len(e.Paths)))
	for _, l := range e.Lookup {
		dst = l.Encode(dst)
	}
	for _, p := range e.Paths {
		dst = p.Encode(dst)
	}
	return dst
}

// BuildLookup computes a lookup table for paths with offsets measured from
// the start of the payload, i.e. the first path's offset is
// 4 + len(paths)*LookupSize, per the spec's encoding rule.
func BuildLookup(paths []Path) []Lookup {
	table := make([]Lookup, len(paths))
	offset := uint64(4 + len(paths)*LookupSize)
	for i, p := range paths {
		table[i] = Lookup{Index: uint32(i + 1), Offset: offset}
		offset += uint64(len(p.Encode(nil)))
	}
	return table
}
