// Package options provides functional configuration for pkg/tomo.Tomo: the
// logger it writes diagnostics through and a decoder registry it carries
// for callers (see Tomo.Options). Tomo's own streams do not consult the
// registry; they fail a non-Raw Paths entry with
// ErrorCodeUnsupportedEncoding.
package options

import (
	"github.com/iamNilotpal/tomo/pkg/decode"
	"github.com/iamNilotpal/tomo/pkg/logger"
	"github.com/iamNilotpal/tomo/pkg/wire"
	"go.uber.org/zap"
)

// Options configures a Tomo instance.
type Options struct {
	// Logger receives diagnostics (container discovery). Left nil,
	// pkg/tomo.New fills in zap.NewNop().Sugar().
	Logger *zap.SugaredLogger

	// Decoders maps encodings other than Raw to decoders.
	// NewDefaultOptions sets it to an empty Registry, whose Decode fails
	// every encoding with ErrorCodeUnsupportedEncoding until a decoder is
	// registered.
	Decoders *decode.Registry
}

// OptionFunc modifies a Tomo's Options during construction.
type OptionFunc func(*Options)

// WithLogger overrides the default logger.
func WithLogger(log *zap.SugaredLogger) OptionFunc {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithProductionLogger is a convenience over WithLogger for callers that
// want zap's production configuration (JSON encoding, info level, sampled)
// tagged with a service name, rather than building one themselves.
func WithProductionLogger(service string) OptionFunc {
	return WithLogger(logger.New(service))
}

// WithDecoders overrides the default (empty) decoder registry.
func WithDecoders(reg *decode.Registry) OptionFunc {
	return func(o *Options) {
		if reg != nil {
			o.Decoders = reg
		}
	}
}

// WithDecoder registers a single decoder against an encoding tag. It builds
// a fresh Registry on the Options if one isn't already present, so it can
// be used standalone without also calling WithDecoders.
func WithDecoder(encoding wire.Encoding, d decode.Decoder) OptionFunc {
	return func(o *Options) {
		if o.Decoders == nil {
			o.Decoders = decode.NewRegistry()
		}
		o.Decoders.Register(encoding, d)
	}
}
