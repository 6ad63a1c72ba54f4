package wire

// AttributesEntry is the full decoded payload of an Attributes entry: a
// count, its lookup table, and the fixed-size attribute records.
type AttributesEntry struct {
	Lookup     []Lookup
	Attributes []Attributes
}

// DecodeAttributesLookupTable decodes just the leading count:u32 and
// lookup table of an Attributes entry's payload.
func DecodeAttributesLookupTable(buf []byte) (count uint32, table []Lookup, consumed int, err error) {
	if len(buf) < 4 {
		return 0, nil, 0, errShort("AttributesEntry.count", 4, len(buf))
	}
	count = getU32(buf[0:4])
	n := 4
	tableBytes := int(count) * LookupSize
	if len(buf) < n+tableBytes {
		return 0, nil, 0, errShort("AttributesEntry.lookup", n+tableBytes, len(buf))
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
	if err := validateLookupMonotonic("AttributesEntry.lookup", table); err != nil {
		return 0, nil, 0, err
	}
	return count, table, n, nil
}

// DecodeAttributesEntry decodes the whole of an Attributes entry's payload.
func DecodeAttributesEntry(buf []byte) (AttributesEntry, int, error) {
	count, table, n, err := DecodeAttributesLookupTable(buf)
	if err != nil {
		return AttributesEntry{}, 0, err
	}
	attrs := make([]Attributes, 0, count)
	for i := uint32(0); i < count; i++ {
		a, consumed, decErr := DecodeAttributes(buf[n:])
		if decErr != nil {
			return AttributesEntry{}, 0, decErr
		}
		attrs = append(attrs, a)
		n += consumed
	}
	return AttributesEntry{Lookup: table, Attributes: attrs}, n, nil
}

// Encode appends the on-wire bytes of e to dst. As with PathsEntry, the
// lookup table offsets must already be correct; Encode does not recompute
// them.
func (e AttributesEntry) Encode(dst []byte) []byte {
	dst = putU32(dst, uint32(len(e.Attributes)))
	for _, l := range e.Lookup {
		dst = l.Encode(dst)
	}
	for _, a := range e.Attributes {
		dst = a.Encode(dst)
	}
	return dst
}

// BuildAttributesLookup computes a lookup table for attrs with offsets
// measured from the start of the payload.
func BuildAttributesLookup(attrs []Attributes) []Lookup {
	table := make([]Lookup, len(attrs))
	offset := uint64(4 + len(attrs)*LookupSize)
	for i := range attrs {
		table[i] = Lookup{Index: uint32(i + 1), Offset: offset}
		offset += AttributesSize
	}
	return table
}
