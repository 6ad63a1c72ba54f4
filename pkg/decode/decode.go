// Package decode provides a pluggable registry of entry decoders, keyed by
// wire.Encoding. Registry.Decode hands a payload to whatever Decoder the
// caller registered for its encoding tag, or fails with
// ErrorCodeUnsupportedEncoding if none was. The core container engine never
// decodes a payload itself and does not consult a Registry: its streams
// fail a non-Raw Paths entry with ErrorCodeUnsupportedEncoding.
package decode

import (
	"context"

	tomoerrors "github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/wire"
)

// Decoder turns an entry's raw on-disk payload plus its params bytes (the
// EntryHeader's optional params region, already delimited; nil when
// has_params was false) into the entry's decoded contents.
type Decoder interface {
	Decode(ctx context.Context, payload []byte, params []byte) ([]byte, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(ctx context.Context, payload []byte, params []byte) ([]byte, error)

// Decode calls f.
func (f DecoderFunc) Decode(ctx context.Context, payload []byte, params []byte) ([]byte, error) {
	return f(ctx, payload, params)
}

// Registry maps wire.Encoding tags to the Decoder that handles them.
// EncodingRaw never needs an entry: callers that see Raw should skip the
// registry entirely and use the payload bytes verbatim.
type Registry struct {
	decoders map[wire.Encoding]Decoder
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[wire.Encoding]Decoder)}
}

// Register associates a Decoder with an encoding tag, replacing any decoder
// previously registered for it.
func (r *Registry) Register(encoding wire.Encoding, d Decoder) {
	r.decoders[encoding] = d
}

// Lookup returns the Decoder registered for encoding, if any.
func (r *Registry) Lookup(encoding wire.Encoding) (Decoder, bool) {
	d, ok := r.decoders[encoding]
	return d, ok
}

// Decode resolves and invokes the decoder for encoding. It returns a
// ContainerError with ErrorCodeUnsupportedEncoding, matching the error the
// core itself raises for an entry whose encoding it can't handle, when no
// decoder is registered.
func (r *Registry) Decode(ctx context.Context, encoding wire.Encoding, payload []byte, params []byte) ([]byte, error) {
	d, ok := r.Lookup(encoding)
	if !ok {
		return nil, tomoerrors.NewUnsupportedEncodingError(uint8(encoding))
	}
	out, err := d.Decode(ctx, payload, params)
	if err != nil {
		return nil, tomoerrors.NewContainerError(err, tomoerrors.ErrorCodeCorruptContainer, "decoder failed").
			WithEncoding(uint8(encoding))
	}
	return out, nil
}
