package conv

import (
	"fmt"
	"strings"
)

// BoundaryMode selects how indices outside [0, N) are resolved.
type BoundaryMode int

const (
	// Periodic wraps indices modulo N.
	Periodic BoundaryMode = iota

	// ZeroPadding treats samples outside the input as zero.
	ZeroPadding

	// Symmetric reflects indices about the edges, repeating the edge sample.
	Symmetric
)

// String returns the mode name.
func (m BoundaryMode) String() string {
	switch m {
	case Periodic:
		return "periodic"
	case ZeroPadding:
		return "zero-padding"
	case Symmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m BoundaryMode) Valid() bool {
	return m >= Periodic && m <= Symmetric
}

// ParseBoundaryMode parses a mode name as printed by String. A few short
// aliases ("per", "zero", "sym") are accepted as well.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "periodic", "per", "circular":
		return Periodic, nil
	case "zero-padding", "zeropadding", "zero", "zeropad":
		return ZeroPadding, nil
	case "symmetric", "sym", "reflect":
		return Symmetric, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// indexMap resolves an out-of-range index. ok is false when the sample
// contributes nothing.
type indexMap func(i, n int) (idx int, ok bool)

func (m BoundaryMode) indexMap() indexMap {
	switch m {
	case ZeroPadding:
		return zeroIndex
	case Symmetric:
		return symmetricIndex
	default:
		return periodicIndex
	}
}

func periodicIndex(i, n int) (int, bool) {
	i %= n
	if i < 0 {
		i += n
	}
	return i, true
}

func zeroIndex(int, int) (int, bool) {
	return 0, false
}

// symmetricIndex reflects with period 2N: ... x1 x0 | x0 x1 ... xN-1 | xN-1 xN-2 ...
func symmetricIndex(i, n int) (int, bool) {
	p := 2 * n
	i %= p
	if i < 0 {
		i += p
	}
	if i >= n {
		i = p - 1 - i
	}
	return i, true
}
