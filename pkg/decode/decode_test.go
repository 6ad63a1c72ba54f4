package decode

import (
	"bytes"
	"context"
	"testing"

	tomoerrors "github.com/iamNilotpal/tomo/pkg/errors"
	"github.com/iamNilotpal/tomo/pkg/wire"
	"github.com/stretchr/testify/require"
)

func TestRegistryUnregisteredEncoding(t *testing.T) {
	r := NewRegistry()
	_, err := r.Decode(context.Background(), wire.EncodingZstd, []byte("x"), nil)
	require.Error(t, err)
	ce, ok := tomoerrors.AsContainerError(err)
	require.True(t, ok)
	require.Equal(t, tomoerrors.ErrorCodeUnsupportedEncoding, ce.Code())
}

func TestRegistryDecodeFuncSuccess(t *testing.T) {
	r := NewRegistry()
	r.Register(wire.EncodingRaw, DecoderFunc(func(_ context.Context, payload, _ []byte) ([]byte, error) {
		out := make([]byte, len(payload))
		copy(out, payload)
		return bytes.ToUpper(out), nil
	}))

	out, err := r.Decode(context.Background(), wire.EncodingRaw, []byte("hi"), nil)
	require.NoError(t, err)
	require.Equal(t, []byte("HI"), out)
}

func TestRegistryDecodeFuncFailureWraps(t *testing.T) {
	r := NewRegistry()
	boom := require.New(t)
	r.Register(wire.EncodingZstd, DecoderFunc(func(_ context.Context, _, _ []byte) ([]byte, error) {
		return nil, assertErr
	}))

	_, err := r.Decode(context.Background(), wire.EncodingZstd, nil, nil)
	boom.Error(err)
	ce, ok := tomoerrors.AsContainerError(err)
	boom.True(ok)
	boom.Equal(tomoerrors.ErrorCodeCorruptContainer, ce.Code())
	boom.Equal(uint8(wire.EncodingZstd), ce.Encoding())
}

var assertErr = &sentinelErr{}

type sentinelErr struct{}

func (*sentinelErr) Error() string { return "boom" }

func TestZstdDecoderRejectsNonZstdInput(t *testing.T) {
	dec, err := NewZstdDecoder()
	require.NoError(t, err)
	defer dec.Close()

	// A real payload would come from a zstd encoder; here we only
	// exercise the error path since constructing valid compressed bytes
	// without the encoder package is out of scope for this test.
	_, err = dec.Decode(context.Background(), []byte("not zstd data"), nil)
	require.Error(t, err)
}

func TestCustomDecoderRoundTrip(t *testing.T) {
	r := NewRegistry()
	var gotProgram string
	r.RegisterCustom(CustomDecoderFunc(func(_ context.Context, payload []byte, params wire.CustomParams) ([]byte, error) {
		gotProgram = string(params.Program)
		return payload, nil
	}))

	params := wire.CustomParams{Tag: wire.CustomParamsProgram, Program: []byte("decompressor\x00")}
	raw := params.Encode(nil)

	out, err := r.Decode(context.Background(), wire.EncodingCustom, []byte("payload"), raw)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), out)
	require.Equal(t, "decompressor\x00", gotProgram)
}

func TestCustomDecoderMissingParams(t *testing.T) {
	r := NewRegistry()
	r.RegisterCustom(CustomDecoderFunc(func(_ context.Context, payload []byte, _ wire.CustomParams) ([]byte, error) {
		return payload, nil
	}))

	_, err := r.Decode(context.Background(), wire.EncodingCustom, []byte("payload"), nil)
	require.Error(t, err)
	ce, ok := tomoerrors.AsContainerError(err)
	require.True(t, ok)
	require.Equal(t, tomoerrors.ErrorCodeCorruptContainer, ce.Code())
}
