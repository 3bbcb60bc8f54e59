package modwt

import (
	"github.com/cwbudde/algo-vecmath"
)

// MRA is an additive multiresolution analysis: the per-level detail
// components and the smooth component, each in the signal domain.
type MRA struct {
	// Details[j-1] is the level-j detail component D_j.
	Details [][]float64

	// Smooth is the level-J smooth component S_J.
	Smooth []float64
}

// Sum returns Σ D_j + S_J. For a periodic transform this is the original
// signal.
func (m *MRA) Sum() []float64 {
	out := append([]float64(nil), m.Smooth...)
	for _, d := range m.Details {
		vecmath.AddBlockInPlace(out, d)
	}
	return out
}

// MultiResolution projects every band of c back to the signal domain. Each
// component is the inverse of c with all other bands set to zero.
func (t *Transform) MultiResolution(c *Coefficients) (*MRA, error) {
	if err := t.checkCoefficients(c); err != nil {
		return nil, err
	}

	n := c.Len()
	levels := c.Levels()
	zero := make([]float64, n)

	out := &MRA{Details: make([][]float64, levels)}
	for j := 1; j <= levels; j++ {
		// Levels above j contribute nothing, so the cascade starts at j
		// with a zero approximation.
		d, err := t.reconstruct(zero, j, func(k int) []float64 {
			if k == j {
				return c.Details[j-1]
			}
			return zero
		})
		if err != nil {
			return nil, err
		}
		out.Details[j-1] = d
	}

	smooth, err := t.reconstruct(c.Approximation, levels, func(int) []float64 { return zero })
	if err != nil {
		return nil, err
	}
	out.Smooth = smooth

	return out, nil
}

// reconstruct runs the inverse cascade from level top down to 1, starting
// from approx and taking detail bands from detail(k).
func (t *Transform) reconstruct(approx []float64, top int, detail func(k int) []float64) ([]float64, error) {
	current := approx
	for k := top; k >= 1; k-- {
		next := make([]float64, len(approx))
		if err := t.synthesize(next, current, detail(k), k); err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}
