package wire

import (
	"encoding/binary"
	"strconv"

	tomoerrors "github.com/iamNilotpal/tomo/pkg/errors"
)

// There is no 24-bit integer type in Go (or in encoding/binary), and the
// on-disk u24 fields (Indic.Path, Indic.Attrs) don't warrant pulling in a
// bit-packing library for three fields; getU24/putU24 hand-roll it the same
// way every container format in the reference corpus hand-rolls its
// fixed-width integer fields.

func getU16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func putU16(dst []byte, v uint16) []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

// DecodeUint32 reads a 4-byte little-endian unsigned integer. Exported for
// callers (internal/stream) that need to peek a count field before they
// have enough bytes buffered to decode a whole structure.
func DecodeUint32(b []byte) uint32 { return getU32(b) }

func getU32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func putU32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

func getU64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
func putU64(dst []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

// getU24 reads a 3-byte little-endian unsigned integer.
func getU24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// putU24 appends a 3-byte little-endian unsigned integer. v must fit in 24 bits.
func putU24(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16))
}

func newCorrupt(reason string) error {
	return tomoerrors.NewCorruptContainerError(reason)
}

func newNotAContainer(offset int64) error {
	return tomoerrors.NewNotAContainerError(offset)
}

func errShort(what string, need, have int) error {
	return newCorrupt(what + ": need " + strconv.Itoa(need) + " bytes, have " + strconv.Itoa(have))
}

func errShortParams(what string, need, have int) error {
	return errShort(what, need, have)
}

// validateLookupMonotonic enforces spec.md's MUST invariant that
// consecutive lookup offsets strictly increase. A table that violates this
// lets a later seek compute a negative or overlapping slice length, so it
// must be rejected at decode time rather than left for a reader to trip
// over.
func validateLookupMonotonic(what string, table []Lookup) error {
	for i := 1; i < len(table); i++ {
		if table[i].Offset <= table[i-1].Offset {
			return newCorrupt(what + ": lookup offsets not strictly increasing")
		}
	}
	return nil
}
