package modwt

import (
	"github.com/cwbudde/algo-modwt/dsp/conv"
	"github.com/cwbudde/algo-modwt/dsp/wavelet"
)

// Forward is a one-shot forward transform with automatic FFT dispatch.
// Use New to reuse level filters across calls.
func Forward(signal []float64, levels int, filter wavelet.Filter, mode conv.BoundaryMode) (*Coefficients, error) {
	t, err := New(filter, WithBoundary(mode))
	if err != nil {
		return nil, err
	}
	return t.Forward(signal, levels)
}

// Inverse is a one-shot inverse transform.
func Inverse(c *Coefficients, filter wavelet.Filter, mode conv.BoundaryMode) ([]float64, error) {
	t, err := New(filter, WithBoundary(mode))
	if err != nil {
		return nil, err
	}
	return t.Inverse(c)
}

// MaxLevels returns the deepest level whose filter fits signalLen samples
// for a baseLen-tap wavelet.
func MaxLevels(signalLen, baseLen int) int {
	return wavelet.MaxLevels(signalLen, baseLen)
}

// ShouldUseFFT applies the default FFT dispatch heuristic.
func ShouldUseFFT(signalLen, effectiveFilterLen int) bool {
	return conv.ShouldUseFFT(signalLen, effectiveFilterLen)
}
