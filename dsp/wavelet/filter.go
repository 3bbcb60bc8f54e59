package wavelet

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by filter construction and level derivation.
var (
	ErrEmptyFilter          = errors.New("wavelet: empty filter")
	ErrFilterLengthMismatch = errors.New("wavelet: filter length mismatch")
	ErrNonFiniteTap         = errors.New("wavelet: non-finite filter tap")
	ErrInvalidLevel         = errors.New("wavelet: level must be >= 1")
	ErrShiftOverflow        = errors.New("wavelet: level exceeds upsampling bound")
)

// Filter is a wavelet filter pair: decomposition and reconstruction taps for
// the low-pass (scaling) and high-pass (wavelet) branches.
//
// Reconstruction is applied as circular correlation, so for an orthogonal
// wavelet the reconstruction taps equal the decomposition taps.
type Filter struct {
	Name    string
	LowDec  []float64
	HighDec []float64
	LowRec  []float64
	HighRec []float64
}

// NewFilter validates the four tap sequences and returns a Filter that
// references them.
func NewFilter(name string, lowDec, highDec, lowRec, highRec []float64) (Filter, error) {
	f := Filter{
		Name:    name,
		LowDec:  lowDec,
		HighDec: highDec,
		LowRec:  lowRec,
		HighRec: highRec,
	}
	if err := f.Validate(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// Orthogonal builds the filter pair of an orthogonal wavelet from its
// low-pass decomposition taps. The high-pass branch is the quadrature mirror
// g[l] = (-1)^l * h[L-1-l].
func Orthogonal(name string, lowDec []float64) (Filter, error) {
	if len(lowDec) == 0 {
		return Filter{}, ErrEmptyFilter
	}

	n := len(lowDec)
	high := make([]float64, n)
	for l := range high {
		v := lowDec[n-1-l]
		if l%2 == 1 {
			v = -v
		}
		high[l] = v
	}

	return NewFilter(name, lowDec, high, lowDec, high)
}

// Haar returns the Haar wavelet.
func Haar() Filter {
	h := 1 / math.Sqrt2
	f, _ := Orthogonal("haar", []float64{h, h})
	return f
}

// Daubechies4 returns the four-tap Daubechies wavelet (two vanishing moments).
func Daubechies4() Filter {
	s3 := math.Sqrt(3)
	d := 4 * math.Sqrt2
	f, _ := Orthogonal("db4", []float64{
		(1 + s3) / d,
		(3 + s3) / d,
		(3 - s3) / d,
		(1 - s3) / d,
	})
	return f
}

// Len returns the support width L0 shared by all four tap sequences.
func (f Filter) Len() int {
	return len(f.LowDec)
}

// Validate checks that all taps are present, finite and of equal length.
func (f Filter) Validate() error {
	bands := [...]struct {
		name string
		taps []float64
	}{
		{"low-pass decomposition", f.LowDec},
		{"high-pass decomposition", f.HighDec},
		{"low-pass reconstruction", f.LowRec},
		{"high-pass reconstruction", f.HighRec},
	}

	n := len(f.LowDec)
	for _, b := range bands {
		if len(b.taps) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyFilter, b.name)
		}
		if len(b.taps) != n {
			return fmt.Errorf("%w: %s has %d taps, want %d", ErrFilterLengthMismatch, b.name, len(b.taps), n)
		}
		for i, v := range b.taps {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s[%d] = %v", ErrNonFiniteTap, b.name, i, v)
			}
		}
	}

	return nil
}

// String returns the filter name, or a length description for unnamed filters.
func (f Filter) String() string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("filter(%d taps)", f.Len())
}
