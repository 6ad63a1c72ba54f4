package wire

const (
	entryFlagHasParams byte = 1 << 7
	entryFlagNested    byte = 1 << 6
	entryFlagReserved  byte = 0x3F // bits 5..0
)

// EntryHeader opens every entry in the entries region: packed flags,
// an encoding tag, and — only when HasParams is set — encoding-specific
// parameter bytes.
type EntryHeader struct {
	HasParams bool
	Nested    bool
	Encoding  Encoding
	Params    []byte
}

// EntryHeaderMinSize is the smallest an EntryHeader can be (HasParams == false).
const EntryHeaderMinSize = 2

// FlagsHaveParams reports whether the has_params bit is set in a raw
// EntryHeader flags byte, so a streaming reader can decide how many more
// bytes to read before calling DecodeEntryHeader on the whole thing.
func FlagsHaveParams(flags byte) bool {
	return flags&entryFlagHasParams != 0
}

// DecodeEntryHeader decodes an EntryHeader from the start of buf. Reserved
// flag bits (5..0) must be zero; the spec prescribes validating this even
// though the format's original implementation did not.
func DecodeEntryHeader(buf []byte) (EntryHeader, int, error) {
	if len(buf) < EntryHeaderMinSize {
		return EntryHeader{}, 0, errShort("EntryHeader", EntryHeaderMinSize, len(buf))
	}
	flags := buf[0]
	if flags&entryFlagReserved != 0 {
		return EntryHeader{}, 0, newCorrupt("EntryHeader: reserved flag bits set")
	}
	hasParams := flags&entryFlagHasParams != 0
	nested := flags&entryFlagNested != 0
	encoding := Encoding(buf[1])

	if !hasParams {
		return EntryHeader{HasParams: false, Nested: nested, Encoding: encoding}, 2, nil
	}

	if len(buf) < 4 {
		return EntryHeader{}, 0, errShort("EntryHeader.params_bytes", 4, len(buf))
	}
	paramsBytes := int(getU16(buf[2:4]))
	if len(buf) < 4+paramsBytes {
		return EntryHeader{}, 0, errShort("EntryHeader.params", 4+paramsBytes, len(buf))
	}
	params := buf[4 : 4+paramsBytes]
	return EntryHeader{
		HasParams: true,
		Nested:    nested,
		Encoding:  encoding,
		Params:    params,
	}, 4 + paramsBytes, nil
}

// Encode appends the on-wire bytes of h to dst.
func (h EntryHeader) Encode(dst []byte) []byte {
	var flags byte
	if h.HasParams {
		flags |= entryFlagHasParams
	}
	if h.Nested {
		flags |= entryFlagNested
	}
	dst = append(dst, flags, byte(h.Encoding))
	if h.HasParams {
		dst = putU16(dst, uint16(len(h.Params)))
		dst = append(dst, h.Params...)
	}
	return dst
}
