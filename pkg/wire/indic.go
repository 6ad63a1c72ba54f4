package wire

// Indic is one 24-byte index record describing a single entry: its kind,
// 1-based references into the Paths/Attributes entries (0 meaning absent),
// and the offset/length of its payload within the entries region.
type Indic struct {
	Kind   IndicKind
	Path   uint32 // u24 on the wire, 1-based, 0 = absent
	Attrs  uint32 // u24 on the wire, 1-based, 0 = absent
	Offset uint64 // from start of entries region
	Length uint64
}

// IndicSize is the fixed on-wire size of Indic.
const IndicSize = 24

// HasPath reports whether Path is present (non-zero).
func (i Indic) HasPath() bool { return i.Path != 0 }

// HasAttrs reports whether Attrs is present (non-zero).
func (i Indic) HasAttrs() bool { return i.Attrs != 0 }

// DecodeIndic decodes an Indic from the first IndicSize bytes of buf. It
// has no access to the container's entries_bytes, so it cannot validate
// that Offset+Length stays within the entries region, or that a special
// kind (Paths/Attributes/Checksums/Signatures) appears at most once per
// container — internal/stream.IndexStream, which holds that context,
// enforces both.
func DecodeIndic(buf []byte) (Indic, int, error) {
	if len(buf) < IndicSize {
		return Indic{}, 0, errShort("Indic", IndicSize, len(buf))
	}
	kind := IndicKind(buf[0])
	if !kind.Valid() {
		return Indic{}, 0, newCorrupt("Indic: unrecognized kind byte")
	}
	path := getU24(buf[1:4])
	attrs := getU24(buf[4:7])
	// buf[7] is reserved, ignored on decode.
	offset := getU64(buf[8:16])
	length := getU64(buf[16:24])
	return Indic{
		Kind:   kind,
		Path:   path,
		Attrs:  attrs,
		Offset: offset,
		Length: length,
	}, IndicSize, nil
}

// Encode appends the on-wire bytes of i to dst.
func (i Indic) Encode(dst []byte) []byte {
	dst = append(dst, byte(i.Kind))
	dst = putU24(dst, i.Path)
	dst = putU24(dst, i.Attrs)
	dst = append(dst, 0) // reserved
	dst = putU64(dst, i.Offset)
	dst = putU64(dst, i.Length)
	return dst
}
