package decode

import (
	"context"

	tomoerrors "github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/wire"
)

// CustomDecoder is the hook signature for wire.EncodingCustom entries: the
// params, already decoded into a wire.CustomParams, name an external
// program by NUL-terminated string. Spawning that program is outside this
// library's scope — a caller registers a CustomDecoder under
// wire.EncodingCustom to supply their own collaborator.
type CustomDecoder interface {
	DecodeCustom(ctx context.Context, payload []byte, params wire.CustomParams) ([]byte, error)
}

// CustomDecoderFunc adapts a plain function to CustomDecoder.
type CustomDecoderFunc func(ctx context.Context, payload []byte, params wire.CustomParams) ([]byte, error)

// DecodeCustom calls f.
func (f CustomDecoderFunc) DecodeCustom(ctx context.Context, payload []byte, params wire.CustomParams) ([]byte, error) {
	return f(ctx, payload, params)
}

// AsDecoder adapts a CustomDecoder to the plain Decoder interface Registry
// expects, decoding the raw params bytes into a wire.CustomParams first.
func AsDecoder(cd CustomDecoder) Decoder {
	return DecoderFunc(func(ctx context.Context, payload []byte, rawParams []byte) ([]byte, error) {
		if len(rawParams) == 0 {
			return nil, errMissingParams
		}
		params, _, err := wire.DecodeCustomParams(rawParams)
		if err != nil {
			return nil, err
		}
		return cd.DecodeCustom(ctx, payload, params)
	})
}

// RegisterCustom is a convenience for Register(wire.EncodingCustom, ...)
// that wires a CustomDecoder through AsDecoder.
func (r *Registry) RegisterCustom(cd CustomDecoder) {
	r.Register(wire.EncodingCustom, AsDecoder(cd))
}

// errMissingParams reports a Custom entry whose EntryHeader carried no
// params, which the format requires for this encoding.
var errMissingParams = tomoerrors.NewCorruptContainerError("Custom entry missing required params")
