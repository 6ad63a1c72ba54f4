package decode

import (
	"context"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZstdDecoder decodes Zstd-encoded entries. It keeps a single
// *zstd.Decoder (the library's own docs recommend reuse over
// per-call construction) guarded by the fact that zstd.Decoder.DecodeAll
// is safe for concurrent use.
type ZstdDecoder struct {
	dec *zstd.Decoder
}

// NewZstdDecoder builds a ZstdDecoder.
func NewZstdDecoder() (*ZstdDecoder, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("tomo: construct zstd decoder: %w", err)
	}
	return &ZstdDecoder{dec: dec}, nil
}

// Decode implements Decoder. params, when present, is an encoded
// wire.ZstdParams; this decoder does not itself resolve the dictionary
// reference — a caller needing dictionary support wraps ZstdDecoder with
// its own Decoder that loads the dictionary entry and calls
// zstd.WithDecoderDicts before delegating.
func (z *ZstdDecoder) Decode(_ context.Context, payload []byte, _ []byte) ([]byte, error) {
	out, err := z.dec.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}

// Close releases the decoder's background goroutines and buffers.
func (z *ZstdDecoder) Close() {
	z.dec.Close()
}
