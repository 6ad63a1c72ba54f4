package seekable

import "context"

// Source is the capability the engine requires from a caller-supplied byte
// stream: reads and relative seeks, both honoring context cancellation.
//
// The engine only ever passes non-negative deltas to SeekRelative within a
// container's bounds, and non-positive deltas bounded by bytes it has
// itself already advanced on this same Source. It never calls an absolute
// seek: wherever the Source was positioned when handed to Tomo is treated
// as logical offset zero.
type Source interface {
	// ReadContext reads up to len(buf) bytes into buf. Like io.Reader, it
	// may return a short read (n < len(buf), err == nil); it returns n == 0
	// only at EOF.
	ReadContext(ctx context.Context, buf []byte) (n int, err error)

	// SeekRelative seeks delta bytes relative to the current position and
	// returns the new absolute position as tracked by the underlying
	// stream.
	SeekRelative(ctx context.Context, delta int64) (newAbsolute int64, err error)
}
