package conv

// FFTHeuristic decides when periodic convolution should run through the FFT.
//
// The zero value never selects the FFT for empty input but is otherwise
// permissive; use [DefaultFFTHeuristic] for the tuned thresholds.
type FFTHeuristic struct {
	// MinN is the smallest signal length for which the FFT is considered.
	MinN int

	// MinFilterToSignalRatio is the filter/signal length ratio that must be
	// exceeded before the FFT is chosen.
	MinFilterToSignalRatio float64
}

// Default thresholds.
const (
	DefaultFFTMinN                   = 1024
	DefaultFFTMinFilterToSignalRatio = 1.0 / 8
)

// DefaultFFTHeuristic returns the default thresholds.
func DefaultFFTHeuristic() FFTHeuristic {
	return FFTHeuristic{
		MinN:                   DefaultFFTMinN,
		MinFilterToSignalRatio: DefaultFFTMinFilterToSignalRatio,
	}
}

// ShouldUseFFT reports whether a periodic convolution of an n-sample signal
// with an l-tap filter should use the FFT: n >= MinN and l > n*ratio.
func (h FFTHeuristic) ShouldUseFFT(n, l int) bool {
	if n <= 0 || l <= 0 {
		return false
	}
	return n >= h.MinN && float64(l) > float64(n)*h.MinFilterToSignalRatio
}

// ShouldUseFFT applies the default heuristic.
func ShouldUseFFT(n, l int) bool {
	return DefaultFFTHeuristic().ShouldUseFFT(n, l)
}
