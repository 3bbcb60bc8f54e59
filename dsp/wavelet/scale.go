package wavelet

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// MaxShift bounds the upsampling shift 2^(level-1). Levels beyond
	// MaxShift+1 are rejected before any allocation.
	MaxShift = 30

	// MaxLevel is the deepest level ScaleFilter accepts.
	MaxLevel = MaxShift + 1

	// stageScale is the per-stage normalization; j stages compose to 2^(-j/2).
	stageScale = 1 / math.Sqrt2
)

// LevelLength returns the length (L0-1)*2^(level-1)+1 of the level filter
// derived from a base filter of baseLen taps. It returns 0 for invalid input
// and when the length would overflow int.
func LevelLength(baseLen, level int) int {
	if baseLen < 1 || level < 1 || level-1 > MaxShift {
		return 0
	}

	shift := uint(level - 1)
	if baseLen-1 > (math.MaxInt-1)>>shift {
		return 0
	}

	return (baseLen-1)<<shift + 1
}

// MaxLevels returns the largest level j such that the level-j filter is no
// longer than the signal, or 0 if not even level 1 fits.
func MaxLevels(signalLen, baseLen int) int {
	if signalLen < 1 || baseLen < 1 {
		return 0
	}

	levels := 0
	for j := 1; j <= MaxLevel; j++ {
		l := LevelLength(baseLen, j)
		if l == 0 || l > signalLen {
			break
		}
		levels = j
	}

	return levels
}

// ScaleFilter derives the level filter from base: the taps are spread
// 2^(level-1) samples apart and multiplied by 1/√2. The result is freshly
// allocated; base is not modified.
func ScaleFilter(base []float64, level int) ([]float64, error) {
	if len(base) == 0 {
		return nil, ErrEmptyFilter
	}
	if level < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	if level-1 > MaxShift {
		return nil, fmt.Errorf("%w: level %d, max %d", ErrShiftOverflow, level, MaxLevel)
	}

	n := LevelLength(len(base), level)
	if n == 0 {
		return nil, fmt.Errorf("%w: %d taps at level %d", ErrShiftOverflow, len(base), level)
	}

	scaled := make([]float64, len(base))
	vecmath.ScaleBlock(scaled, base, stageScale)

	if level == 1 {
		return scaled, nil
	}

	stride := 1 << uint(level-1)
	out := make([]float64, n)
	for l, v := range scaled {
		out[l*stride] = v
	}

	return out, nil
}
