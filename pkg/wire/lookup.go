package wire

// Lookup is one entry of the directory table embedded at the start of a
// Paths or Attributes entry's payload, letting a reader jump straight to
// the i-th item without a sequential scan.
type Lookup struct {
	Index  uint32 // 1-based
	Offset uint64 // from the start of the enclosing entry's payload
}

// LookupSize is the fixed on-wire size of Lookup.
const LookupSize = 12

// DecodeLookup decodes a Lookup from the start of buf.
func DecodeLookup(buf []byte) (Lookup, int, error) {
	if len(buf) < LookupSize {
		return Lookup{}, 0, errShort("Lookup", LookupSize, len(buf))
	}
	return Lookup{
		Index:  getU32(buf[0:4]),
		Offset: getU64(buf[4:12]),
	}, LookupSize, nil
}

// Encode appends the on-wire bytes of l to dst.
func (l Lookup) Encode(dst []byte) []byte {
	dst = putU32(dst, l.Index)
	dst = putU64(dst, l.Offset)
	return dst
}
