package modwt

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-modwt/dsp/conv"
)

// Coefficients is the output of a J-level forward transform: the final
// approximation band and one detail band per level, every band N samples long.
//
// Bands may be modified in place (e.g. by thresholding) before the value is
// passed to Inverse. The caller serializes such mutation.
type Coefficients struct {
	// Approximation is the low-pass output of the last level.
	Approximation []float64

	// Details holds one band per level; Details[0] is level 1.
	Details [][]float64

	// Mode is the boundary mode the coefficients were computed with.
	Mode conv.BoundaryMode
}

// Levels returns the number of detail levels J.
func (c *Coefficients) Levels() int {
	return len(c.Details)
}

// Len returns the band length N.
func (c *Coefficients) Len() int {
	return len(c.Approximation)
}

// Detail returns the detail band of level (1-based).
func (c *Coefficients) Detail(level int) ([]float64, error) {
	if level < 1 || level > len(c.Details) {
		return nil, fmt.Errorf("%w: level %d, have %d levels", ErrLevelOutOfRange, level, len(c.Details))
	}
	return c.Details[level-1], nil
}

// Clone returns a deep copy.
func (c *Coefficients) Clone() *Coefficients {
	out := &Coefficients{
		Approximation: append([]float64(nil), c.Approximation...),
		Details:       make([][]float64, len(c.Details)),
		Mode:          c.Mode,
	}
	for i, d := range c.Details {
		out.Details[i] = append([]float64(nil), d...)
	}
	return out
}

// Validate checks the structure: a non-empty approximation, at least one
// detail level, and equal band lengths.
func (c *Coefficients) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil", ErrInvalidCoefficients)
	}
	n := len(c.Approximation)
	if n == 0 {
		return fmt.Errorf("%w: empty approximation", ErrInvalidCoefficients)
	}
	if len(c.Details) == 0 {
		return fmt.Errorf("%w: no detail levels", ErrInvalidCoefficients)
	}
	for i, d := range c.Details {
		if len(d) != n {
			return fmt.Errorf("%w: detail level %d has %d samples, want %d", ErrInvalidCoefficients, i+1, len(d), n)
		}
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: boundary mode %v", ErrInvalidCoefficients, c.Mode)
	}
	return nil
}

// LevelEnergies returns Σ d² for each detail level.
func (c *Coefficients) LevelEnergies() []float64 {
	out := make([]float64, len(c.Details))
	for i, d := range c.Details {
		out[i] = vecmath.DotProduct(d, d)
	}
	return out
}

// ApproximationEnergy returns Σ a² of the approximation band.
func (c *Coefficients) ApproximationEnergy() float64 {
	return vecmath.DotProduct(c.Approximation, c.Approximation)
}

// Energy returns the total energy of all bands. For a periodic transform with
// an orthogonal wavelet it equals the signal energy.
func (c *Coefficients) Energy() float64 {
	e := c.ApproximationEnergy()
	for _, v := range c.LevelEnergies() {
		e += v
	}
	return e
}
