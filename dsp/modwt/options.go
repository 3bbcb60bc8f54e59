package modwt

import (
	"fmt"

	"github.com/cwbudde/algo-modwt/dsp/conv"
)

// FFTPolicy controls when periodic convolutions use the FFT.
type FFTPolicy int

const (
	// FFTAuto consults the transform's FFTHeuristic per level.
	FFTAuto FFTPolicy = iota

	// FFTNever always convolves directly.
	FFTNever

	// FFTAlways uses the FFT at every level. Requires Periodic boundaries.
	FFTAlways
)

// String returns the policy name.
func (p FFTPolicy) String() string {
	switch p {
	case FFTAuto:
		return "auto"
	case FFTNever:
		return "never"
	case FFTAlways:
		return "always"
	default:
		return fmt.Sprintf("FFTPolicy(%d)", int(p))
	}
}

// Config holds transform settings.
type Config struct {
	Boundary  conv.BoundaryMode
	FFTPolicy FFTPolicy
	Heuristic conv.FFTHeuristic
	Backend   conv.FFTBackend
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns periodic boundaries, automatic FFT dispatch with the
// default thresholds, and the algo-fft backend.
func DefaultConfig() Config {
	return Config{
		Boundary:  conv.Periodic,
		FFTPolicy: FFTAuto,
		Heuristic: conv.DefaultFFTHeuristic(),
		Backend:   conv.BackendAlgoFFT,
	}
}

// WithBoundary sets the boundary mode.
func WithBoundary(mode conv.BoundaryMode) Option {
	return func(cfg *Config) {
		cfg.Boundary = mode
	}
}

// WithFFTPolicy sets the FFT dispatch policy.
func WithFFTPolicy(p FFTPolicy) Option {
	return func(cfg *Config) {
		cfg.FFTPolicy = p
	}
}

// WithFFTHeuristic replaces the FFT dispatch thresholds.
func WithFFTHeuristic(h conv.FFTHeuristic) Option {
	return func(cfg *Config) {
		cfg.Heuristic = h
	}
}

// WithFFTBackend selects the FFT implementation.
func WithFFTBackend(b conv.FFTBackend) Option {
	return func(cfg *Config) {
		cfg.Backend = b
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports configuration errors, wrapping ErrInvalidConfiguration.
func (cfg Config) Validate() error {
	if !cfg.Boundary.Valid() {
		return fmt.Errorf("%w: boundary mode %v", ErrInvalidConfiguration, cfg.Boundary)
	}
	if cfg.FFTPolicy < FFTAuto || cfg.FFTPolicy > FFTAlways {
		return fmt.Errorf("%w: FFT policy %v", ErrInvalidConfiguration, cfg.FFTPolicy)
	}
	if cfg.FFTPolicy == FFTAlways && cfg.Boundary != conv.Periodic {
		return fmt.Errorf("%w: FFT convolution requires periodic boundaries, got %v", ErrInvalidConfiguration, cfg.Boundary)
	}
	return validateHeuristic(cfg.Heuristic)
}

func validateHeuristic(h conv.FFTHeuristic) error {
	// NaN fails both comparisons.
	if h.MinN < 0 || !(h.MinFilterToSignalRatio >= 0) {
		return fmt.Errorf("%w: FFT heuristic %+v", ErrInvalidConfiguration, h)
	}
	return nil
}
