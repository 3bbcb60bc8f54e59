package conv

import (
	"errors"
	"fmt"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput      = errors.New("conv: empty input")
	ErrEmptyKernel     = errors.New("conv: empty kernel")
	ErrLengthMismatch  = errors.New("conv: buffer length mismatch")
	ErrInvalidRange    = errors.New("conv: invalid output range")
	ErrInvalidMode     = errors.New("conv: invalid boundary mode")
	ErrInvalidBackend  = errors.New("conv: invalid FFT backend")
	ErrTransformFailed = errors.New("conv: FFT failed")
)

// Convolve computes out[t] = Σ filter[l]·signal[t-l] for t in [0, N), with
// out-of-range indices resolved by mode. The result has len(signal) samples.
func Convolve(signal, filter []float64, mode BoundaryMode) ([]float64, error) {
	dst := make([]float64, len(signal))
	if err := ConvolveTo(dst, signal, filter, mode); err != nil {
		return nil, err
	}
	return dst, nil
}

// ConvolveTo is Convolve writing into a pre-allocated dst of len(signal).
func ConvolveTo(dst, signal, filter []float64, mode BoundaryMode) error {
	return ConvolveRangeTo(dst, signal, filter, mode, 0, len(signal))
}

// ConvolveRangeTo computes only dst[lo:hi] of the convolution. dst must have
// len(signal) samples; entries outside [lo, hi) are left untouched.
//
// Disjoint ranges may be computed concurrently as long as signal and filter
// are not modified.
func ConvolveRangeTo(dst, signal, filter []float64, mode BoundaryMode, lo, hi int) error {
	return apply(dst, signal, filter, mode, analysis, lo, hi)
}

// ConvolvePeriodic is Convolve with Periodic boundaries.
func ConvolvePeriodic(signal, filter []float64) ([]float64, error) {
	return Convolve(signal, filter, Periodic)
}

// ConvolveZeroPad is Convolve with ZeroPadding boundaries.
func ConvolveZeroPad(signal, filter []float64) ([]float64, error) {
	return Convolve(signal, filter, ZeroPadding)
}

// ConvolveSymmetric is Convolve with Symmetric boundaries.
func ConvolveSymmetric(signal, filter []float64) ([]float64, error) {
	return Convolve(signal, filter, Symmetric)
}

// Correlate computes the synthesis form out[t] = Σ filter[l]·signal[t+l].
// Under Periodic boundaries it is the adjoint of Convolve.
func Correlate(signal, filter []float64, mode BoundaryMode) ([]float64, error) {
	dst := make([]float64, len(signal))
	if err := CorrelateTo(dst, signal, filter, mode); err != nil {
		return nil, err
	}
	return dst, nil
}

// CorrelateTo is Correlate writing into a pre-allocated dst of len(signal).
func CorrelateTo(dst, signal, filter []float64, mode BoundaryMode) error {
	return CorrelateRangeTo(dst, signal, filter, mode, 0, len(signal))
}

// CorrelateRangeTo computes only dst[lo:hi] of the correlation.
func CorrelateRangeTo(dst, signal, filter []float64, mode BoundaryMode, lo, hi int) error {
	return apply(dst, signal, filter, mode, synthesis, lo, hi)
}

func apply(dst, signal, filter []float64, mode BoundaryMode, dir direction, lo, hi int) error {
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	if len(filter) == 0 {
		return ErrEmptyKernel
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	if len(dst) != len(signal) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(signal), len(dst))
	}
	if lo < 0 || hi > len(signal) || lo > hi {
		return fmt.Errorf("%w: [%d, %d) for length %d", ErrInvalidRange, lo, hi, len(signal))
	}

	kernel(dst, signal, nonZeroTaps(filter), dir, mode.indexMap(), lo, hi)
	return nil
}
