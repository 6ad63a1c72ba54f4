package wire

// ContainerHeader is the fixed 24-byte header that opens every container:
// magic, mode, and the byte lengths of the index and entries regions that
// follow it.
type ContainerHeader struct {
	Mode        Mode
	IndexBytes  uint64
	EntriesBytes uint64
}

// ContainerHeaderSize is the on-wire size of ContainerHeader, magic included.
const ContainerHeaderSize = 24

// MaxIndicCount is the largest number of Indic records a container's index
// may describe (2^24 - 1), per spec.md's indic-count ceiling.
const MaxIndicCount = 1<<24 - 1

// DecodeContainerHeader decodes a ContainerHeader at the start of buf,
// returning the value and bytes consumed (always ContainerHeaderSize on
// success). An unrecognized magic yields a NotAContainer error carrying
// offset; an unrecognized mode byte, an IndexBytes that isn't a multiple of
// IndicSize, or an indic count past MaxIndicCount all yield CorruptContainer.
func DecodeContainerHeader(buf []byte, offset int64) (ContainerHeader, int, error) {
	if len(buf) < ContainerHeaderSize {
		return ContainerHeader{}, 0, errShort("ContainerHeader", ContainerHeaderSize, len(buf))
	}
	if !HasMagic(buf) {
		return ContainerHeader{}, 0, newNotAContainer(offset)
	}
	mode := Mode(buf[MagicSize])
	if !mode.Valid() {
		return ContainerHeader{}, 0, newCorrupt("ContainerHeader: unrecognized mode byte")
	}
	indexBytes := getU64(buf[8:16])
	entriesBytes := getU64(buf[16:24])
	if indexBytes%IndicSize != 0 {
		return ContainerHeader{}, 0, newCorrupt("ContainerHeader: index_bytes not a multiple of indic size")
	}
	if indexBytes/IndicSize > MaxIndicCount {
		return ContainerHeader{}, 0, newCorrupt("ContainerHeader: indic count exceeds maximum")
	}
	return ContainerHeader{
		Mode:         mode,
		IndexBytes:   indexBytes,
		EntriesBytes: entriesBytes,
	}, ContainerHeaderSize, nil
}

// Encode appends the on-wire bytes of h, magic included, to dst.
func (h ContainerHeader) Encode(dst []byte) []byte {
	dst = append(dst, Magic[:]...)
	dst = append(dst, byte(h.Mode))
	dst = putU64(dst, h.IndexBytes)
	dst = putU64(dst, h.EntriesBytes)
	return dst
}

// IndicCount reports the number of Indic records this header's IndexBytes
// describes. Safe to call unconditionally on a header produced by
// DecodeContainerHeader, which already validated IndexBytes is a multiple
// of IndicSize.
func (h ContainerHeader) IndicCount() uint64 {
	return h.IndexBytes / IndicSize
}
