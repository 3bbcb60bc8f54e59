// Package wavelet describes wavelet filter pairs and derives the dilated
// per-level filters used by the maximal-overlap transform.
//
// A [Filter] holds the four tap sequences of a wavelet: low-/high-pass
// decomposition and low-/high-pass reconstruction. The engine references
// these slices and never writes to them.
//
// # Level filters
//
// The level-j filter is the base filter upsampled "à trous" (2^(j-1)-1 zeros
// inserted between consecutive taps) and multiplied by 1/√2:
//
//	lj, err := wavelet.ScaleFilter(f.LowDec, 3)
//	// len(lj) == (len(f.LowDec)-1)*4 + 1
//
// [MaxLevels] returns the deepest level whose filter still fits in a signal:
//
//	j := wavelet.MaxLevels(1024, f.Len())
//
// # Coefficients
//
// Coefficient tables are supplied by the caller. [Orthogonal] builds a complete
// filter pair from an orthonormal low-pass, and [Haar] and [Daubechies4] are
// provided in closed form.
package wavelet
