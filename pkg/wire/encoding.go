package wire

// Encoding tags how an entry's payload is encoded.
type Encoding uint8

const (
	EncodingRaw    Encoding = 0x00
	EncodingZstd   Encoding = 0x01
	EncodingCustom Encoding = 0xFE
	EncodingTomo   Encoding = 0xFF // nested container
)

func (e Encoding) String() string {
	switch e {
	case EncodingRaw:
		return "Raw"
	case EncodingZstd:
		return "Zstd"
	case EncodingCustom:
		return "Custom"
	case EncodingTomo:
		return "Tomo"
	default:
		return "Unknown"
	}
}

// ZstdParams names the dictionary data entry (by 1-based indic index) used
// to decode a Zstd-encoded entry. A Dictionary of 0 means no dictionary.
type ZstdParams struct {
	Dictionary uint64
}

// DecodeZstdParams decodes an 8-byte little-endian dictionary index.
func DecodeZstdParams(buf []byte) (ZstdParams, int, error) {
	if len(buf) < 8 {
		return ZstdParams{}, 0, errShortParams("ZstdParams", 8, len(buf))
	}
	return ZstdParams{Dictionary: getU64(buf)}, 8, nil
}

// Encode appends the on-wire bytes of p to dst and returns the result.
func (p ZstdParams) Encode(dst []byte) []byte {
	return putU64(dst, p.Dictionary)
}

// CustomParamsTag identifies the single currently-defined CustomParams variant.
type CustomParamsTag uint8

const (
	// CustomParamsProgram names an external program that decodes the entry.
	CustomParamsProgram CustomParamsTag = 0x01
)

// CustomParams is a tagged union of parameters for Encoding == Custom.
type CustomParams struct {
	Tag     CustomParamsTag
	Program []byte // NUL-terminated, tag == CustomParamsProgram
}

// DecodeCustomParams decodes a tag byte followed by a NUL-terminated
// program name.
func DecodeCustomParams(buf []byte) (CustomParams, int, error) {
	if len(buf) < 1 {
		return CustomParams{}, 0, errShortParams("CustomParams", 1, len(buf))
	}
	tag := CustomParamsTag(buf[0])
	switch tag {
	case CustomParamsProgram:
		nul := indexByte(buf[1:], 0)
		if nul < 0 {
			return CustomParams{}, 0, newCorrupt("CustomParams.Program: missing NUL terminator")
		}
		n := 1 + nul + 1
		return CustomParams{Tag: tag, Program: buf[1:n]}, n, nil
	default:
		return CustomParams{}, 0, newCorrupt("CustomParams: unknown tag")
	}
}

// Encode appends the on-wire bytes of p to dst and returns the result.
func (p CustomParams) Encode(dst []byte) []byte {
	dst = append(dst, byte(p.Tag))
	dst = append(dst, p.Program...)
	return dst
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
