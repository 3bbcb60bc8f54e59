// Package modwt implements the maximal-overlap discrete wavelet transform
// (MODWT), a non-decimated, shift-invariant multi-resolution decomposition.
//
// A J-level transform of an N-sample signal yields one approximation band and
// J detail bands, each of length N. Under Periodic boundaries the inverse
// reproduces the signal to rounding error, and for orthogonal wavelets the
// band energies add up to the signal energy.
//
// # Usage
//
//	t, err := modwt.New(wavelet.Daubechies4())
//	c, err := t.Forward(signal, 4)
//	// ... threshold c.Details in place ...
//	rec, err := t.Inverse(c)
//
// One-shot helpers mirror the transform methods:
//
//	c, err := modwt.Forward(signal, 4, wavelet.Haar(), conv.Periodic)
//	rec, err := modwt.Inverse(c, wavelet.Haar(), conv.Periodic)
//
// # Pyramid
//
// Level j convolves the level j-1 approximation with the level filters from
// [wavelet.ScaleFilter] (taps spread 2^(j-1) apart, scaled by 1/√2). Levels
// are strictly sequential. Within a level, each output sample is independent,
// see [conv.ConvolveRangeTo] for partitioned evaluation.
//
// Per level, periodic convolutions go through the FFT when the transform's
// [conv.FFTHeuristic] says so (or always/never, see [FFTPolicy]); both paths
// agree to about 1e-9.
//
// # Boundaries
//
// Only Periodic boundaries are exactly invertible. ZeroPadding and Symmetric
// transforms invert approximately: samples in [M, N-M), with M reported by
// [Transform.InteriorMargin], are reconstructed exactly, edge samples are not.
//
// # Errors
//
// Validation errors (empty signal, non-finite samples, level < 1) and
// configuration errors (level above [MaxLevels], FFT forced under a
// non-periodic mode, coefficients from a different mode) are reported before
// any computation. Match them with errors.Is.
//
// # Concurrency
//
// A Transform is safe for concurrent use. Level filters are built lazily and
// cached per Transform; FFT scratch is pooled per signal length. The engine
// never starts goroutines.
package modwt
