package options

import "github.com/iamNilotpal/tomo/pkg/decode"

// NewDefaultOptions returns the Options a Tomo is constructed with before
// any OptionFunc is applied: no logger (pkg/tomo.New falls back to
// zap.NewNop().Sugar(), since a library must not force logging
// configuration on its caller) and an empty, still-usable decoder
// Registry.
func NewDefaultOptions() Options {
	return Options{Decoders: decode.NewRegistry()}
}
