package wire

import "bytes"

// Magic is the fixed 7-byte sequence that must open every container.
var Magic = [7]byte{0x00, 0x54, 0x00, 0x4D, 0x00, 0x76, 0x01}

// MagicSize is the on-wire size of Magic.
const MagicSize = len(Magic)

// HasMagic reports whether buf begins with Magic.
func HasMagic(buf []byte) bool {
	return len(buf) >= MagicSize && bytes.Equal(buf[:MagicSize], Magic[:])
}
