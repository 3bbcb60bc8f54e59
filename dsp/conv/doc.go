// Package conv provides the same-length convolution kernels behind the
// maximal-overlap wavelet transform.
//
// Every routine maps an N-sample input to an N-sample output. Indices that fall
// outside the input are resolved by a [BoundaryMode]:
//
//   - Periodic: indices wrap modulo N (exact, invertible)
//   - ZeroPadding: out-of-range samples contribute zero
//   - Symmetric: half-sample symmetric reflection (x[-1] = x[0])
//
// # Direct convolution
//
// Analysis form computes out[t] = Σ f[l]·x[t-l]; synthesis form (correlation)
// computes out[t] = Σ f[l]·x[t+l]:
//
//	approx, err := conv.ConvolvePeriodic(signal, lowPass)
//	back, err := conv.Correlate(approx, lowPass, conv.Periodic)
//
// Zero taps are skipped, so à-trous (dilated) filters cost O(N·nnz) instead of
// O(N·L). The range variants [ConvolveRangeTo] and [CorrelateRangeTo] fill only
// dst[lo:hi]; each output sample depends on read-only inputs, so callers may
// split the index space across goroutines and join afterwards.
//
// # FFT convolution
//
// [CircularConvolveFFT] and [CircularCorrelateFFT] compute the periodic forms
// through an FFT. A [CircularEngine] keeps per-size plans and scratch buffers
// in pools and accepts several filters per input:
//
//	e, err := conv.NewCircularEngine(conv.BackendAlgoFFT)
//	err = e.ConvolveMulti([][]float64{approx, detail}, signal, [][]float64{lo, hi})
//
// # Algorithm Selection
//
// [FFTHeuristic] decides between the two. Direct convolution costs O(N·L);
// the FFT path costs O(N log N) plus plan setup, so it only pays off for long
// signals where the filter is a sizable fraction of the signal. The defaults
// (N ≥ 1024 and L > N/8) are returned by [DefaultFFTHeuristic].
package conv
