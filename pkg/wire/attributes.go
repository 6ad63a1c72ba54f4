package wire

// Attributes is the fixed 2-byte payload of an Attributes entry item: a
// POSIX-style file mode.
type Attributes struct {
	FileMode uint16
}

// AttributesSize is the fixed on-wire size of Attributes.
const AttributesSize = 2

// DecodeAttributes decodes an Attributes value from the start of buf.
func DecodeAttributes(buf []byte) (Attributes, int, error) {
	if len(buf) < AttributesSize {
		return Attributes{}, 0, errShort("Attributes", AttributesSize, len(buf))
	}
	return Attributes{FileMode: getU16(buf[0:2])}, AttributesSize, nil
}

// Encode appends the on-wire bytes of a to dst.
func (a Attributes) Encode(dst []byte) []byte {
	return putU16(dst, a.FileMode)
}
