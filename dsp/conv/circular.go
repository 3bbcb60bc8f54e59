package conv

import (
	"fmt"
	"strings"
	"sync"
)

// FFTBackend selects the transform used by a [CircularEngine].
type FFTBackend int

const (
	// BackendAlgoFFT uses algo-fft complex plans on power-of-two sizes.
	// Lengths that are not a power of two are handled by a padded linear
	// convolution that is wrapped back to N samples.
	BackendAlgoFFT FFTBackend = iota

	// BackendGonum uses gonum's real FFT on exactly N points.
	BackendGonum
)

// String returns the backend name.
func (b FFTBackend) String() string {
	switch b {
	case BackendAlgoFFT:
		return "algofft"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("FFTBackend(%d)", int(b))
	}
}

// ParseFFTBackend parses a backend name as printed by String.
func ParseFFTBackend(s string) (FFTBackend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "algofft", "algo-fft":
		return BackendAlgoFFT, nil
	case "gonum":
		return BackendGonum, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBackend, s)
	}
}

// spectralWorker computes circular convolutions for one signal length. A
// worker owns its plans and scratch and is used by one goroutine at a time.
type spectralWorker interface {
	// convolve writes x ⊛ kernels[k] (mod N) into dsts[k]. Kernels are
	// already folded to N samples.
	convolve(dsts [][]float64, x []float64, kernels [][]float64) error
}

// CircularEngine computes periodic convolutions through the FFT.
//
// Workers are pooled per signal length, so an engine can be shared by
// concurrent callers; no scratch buffer is used by two calls at once.
type CircularEngine struct {
	backend FFTBackend

	poolsMu sync.RWMutex
	pools   map[int]*sync.Pool // keyed by signal length
}

// NewCircularEngine creates an engine using backend.
func NewCircularEngine(backend FFTBackend) (*CircularEngine, error) {
	if backend != BackendAlgoFFT && backend != BackendGonum {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackend, backend)
	}

	return &CircularEngine{
		backend: backend,
		pools:   make(map[int]*sync.Pool),
	}, nil
}

// Backend returns the configured backend.
func (e *CircularEngine) Backend() FFTBackend {
	return e.backend
}

// Convolve returns the circular convolution out[t] = Σ filter[l]·signal[(t-l) mod N].
func (e *CircularEngine) Convolve(signal, filter []float64) ([]float64, error) {
	dst := make([]float64, len(signal))
	if err := e.ConvolveMulti([][]float64{dst}, signal, [][]float64{filter}); err != nil {
		return nil, err
	}
	return dst, nil
}

// Correlate returns the circular correlation out[t] = Σ filter[l]·signal[(t+l) mod N].
func (e *CircularEngine) Correlate(signal, filter []float64) ([]float64, error) {
	dst := make([]float64, len(signal))
	if err := e.CorrelateMulti([][]float64{dst}, signal, [][]float64{filter}); err != nil {
		return nil, err
	}
	return dst, nil
}

// ConvolveMulti convolves signal with every filter, writing into the matching
// dst. The signal spectrum is computed once.
func (e *CircularEngine) ConvolveMulti(dsts [][]float64, signal []float64, filters [][]float64) error {
	return e.run(dsts, signal, filters, analysis)
}

// CorrelateMulti is the synthesis-form counterpart of ConvolveMulti.
func (e *CircularEngine) CorrelateMulti(dsts [][]float64, signal []float64, filters [][]float64) error {
	return e.run(dsts, signal, filters, synthesis)
}

func (e *CircularEngine) run(dsts [][]float64, signal []float64, filters [][]float64, dir direction) error {
	n := len(signal)
	if n == 0 {
		return ErrEmptyInput
	}
	if len(dsts) != len(filters) {
		return fmt.Errorf("%w: %d outputs for %d filters", ErrLengthMismatch, len(dsts), len(filters))
	}

	kernels := make([][]float64, len(filters))
	for k, f := range filters {
		if len(f) == 0 {
			return ErrEmptyKernel
		}
		if len(dsts[k]) != n {
			return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, n, len(dsts[k]))
		}
		kernels[k] = foldKernel(f, n, dir)
	}

	if n == 1 {
		for k := range dsts {
			dsts[k][0] = kernels[k][0] * signal[0]
		}
		return nil
	}

	pool := e.pool(n)
	w, _ := pool.Get().(spectralWorker)
	if w == nil {
		var err error
		if w, err = e.newWorker(n); err != nil {
			return err
		}
	}
	defer pool.Put(w)

	return w.convolve(dsts, signal, kernels)
}

func (e *CircularEngine) newWorker(n int) (spectralWorker, error) {
	switch e.backend {
	case BackendGonum:
		return newGonumWorker(n), nil
	default:
		return newAlgoFFTWorker(n)
	}
}

// pool returns the worker pool for signal length n, creating it if needed.
func (e *CircularEngine) pool(n int) *sync.Pool {
	e.poolsMu.RLock()
	p, ok := e.pools[n]
	e.poolsMu.RUnlock()

	if ok {
		return p
	}

	e.poolsMu.Lock()
	defer e.poolsMu.Unlock()

	// Check again in case another goroutine created it
	if p, ok := e.pools[n]; ok {
		return p
	}

	p = &sync.Pool{}
	e.pools[n] = p
	return p
}

// foldKernel wraps filter onto n samples (taps at l and l+n add up). For the
// synthesis direction the folded kernel is also time-reversed, turning the
// correlation into a convolution.
func foldKernel(filter []float64, n int, dir direction) []float64 {
	out := make([]float64, n)
	for l, v := range filter {
		k := l % n
		if dir == synthesis && k != 0 {
			k = n - k
		}
		out[k] += v
	}
	return out
}

// CircularConvolveFFT computes the periodic convolution of signal and filter
// through the FFT. It matches ConvolvePeriodic up to rounding.
func CircularConvolveFFT(signal, filter []float64) ([]float64, error) {
	e, err := NewCircularEngine(BackendAlgoFFT)
	if err != nil {
		return nil, err
	}
	return e.Convolve(signal, filter)
}

// CircularCorrelateFFT computes the periodic correlation of signal and filter
// through the FFT. It matches Correlate(signal, filter, Periodic) up to rounding.
func CircularCorrelateFFT(signal, filter []float64) ([]float64, error) {
	e, err := NewCircularEngine(BackendAlgoFFT)
	if err != nil {
		return nil, err
	}
	return e.Correlate(signal, filter)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
