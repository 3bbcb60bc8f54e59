package modwt

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-modwt/dsp/conv"
	"github.com/cwbudde/algo-modwt/dsp/wavelet"
)

// Transform is a MODWT configured for one wavelet and boundary mode.
type Transform struct {
	filter  wavelet.Filter
	mode    conv.BoundaryMode
	policy  FFTPolicy
	backend conv.FFTBackend

	heuristic atomic.Pointer[conv.FFTHeuristic]
	engine    *conv.CircularEngine
	cache     *filterCache
}

// New creates a transform for filter. The filter taps are referenced, not
// copied, and must not be modified while the transform is in use.
func New(filter wavelet.Filter, opts ...Option) (*Transform, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("modwt: invalid filter: %w", err)
	}

	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine, err := conv.NewCircularEngine(cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	t := &Transform{
		filter:  filter,
		mode:    cfg.Boundary,
		policy:  cfg.FFTPolicy,
		backend: cfg.Backend,
		engine:  engine,
		cache:   newFilterCache(),
	}
	h := cfg.Heuristic
	t.heuristic.Store(&h)

	return t, nil
}

// Filter returns the wavelet filter.
func (t *Transform) Filter() wavelet.Filter { return t.filter }

// Mode returns the boundary mode.
func (t *Transform) Mode() conv.BoundaryMode { return t.mode }

// FFTPolicy returns the FFT dispatch policy.
func (t *Transform) FFTPolicy() FFTPolicy { return t.policy }

// Backend returns the FFT backend.
func (t *Transform) Backend() conv.FFTBackend { return t.backend }

// FFTHeuristic returns the current FFT dispatch thresholds.
func (t *Transform) FFTHeuristic() conv.FFTHeuristic {
	return *t.heuristic.Load()
}

// SetFFTHeuristic replaces the FFT dispatch thresholds. Calls already in
// progress may see either value at each level.
func (t *Transform) SetFFTHeuristic(h conv.FFTHeuristic) error {
	if err := validateHeuristic(h); err != nil {
		return err
	}
	t.heuristic.Store(&h)
	return nil
}

// ResetFFTHeuristic restores the default FFT dispatch thresholds.
func (t *Transform) ResetFFTHeuristic() {
	h := conv.DefaultFFTHeuristic()
	t.heuristic.Store(&h)
}

// MaxLevels returns the deepest level supported for an n-sample signal.
func (t *Transform) MaxLevels(n int) int {
	return wavelet.MaxLevels(n, t.filter.Len())
}

// UsesFFT reports whether the convolutions of the given level would run
// through the FFT for an n-sample signal.
func (t *Transform) UsesFFT(n, level int) bool {
	return t.useFFT(n, wavelet.LevelLength(t.filter.Len(), level))
}

// InteriorMargin returns M = Σ (L_j - 1) over levels 1..levels. For
// non-periodic modes, samples in [M, N-M) reconstruct exactly.
func (t *Transform) InteriorMargin(levels int) int {
	m := 0
	for j := 1; j <= levels; j++ {
		l := wavelet.LevelLength(t.filter.Len(), j)
		if l == 0 {
			return math.MaxInt
		}
		m += l - 1
	}
	return m
}

// CachedLevels returns the levels whose filters have been materialized.
func (t *Transform) CachedLevels() []int {
	return t.cache.keys()
}

// Forward computes a levels-deep decomposition of signal. The signal is not
// modified.
func (t *Transform) Forward(signal []float64, levels int) (*Coefficients, error) {
	if err := validateSignal(signal); err != nil {
		return nil, err
	}
	n := len(signal)
	if err := t.checkLevels(n, levels); err != nil {
		return nil, err
	}

	c := &Coefficients{
		Details: make([][]float64, levels),
		Mode:    t.mode,
	}

	current := signal
	for j := 1; j <= levels; j++ {
		approx := make([]float64, n)
		detail := make([]float64, n)
		if err := t.analyze(approx, detail, current, j); err != nil {
			return nil, err
		}
		c.Details[j-1] = detail
		current = approx
	}
	c.Approximation = current

	return c, nil
}

// Inverse reconstructs the signal from c. Exact for Periodic transforms;
// approximate near the edges otherwise. c is not modified.
func (t *Transform) Inverse(c *Coefficients) ([]float64, error) {
	if err := t.checkCoefficients(c); err != nil {
		return nil, err
	}

	n := c.Len()
	current := c.Approximation
	for j := c.Levels(); j >= 1; j-- {
		next := make([]float64, n)
		if err := t.synthesize(next, current, c.Details[j-1], j); err != nil {
			return nil, err
		}
		current = next
	}

	return current, nil
}

// Step runs a single decomposition level on input, returning the level's
// approximation and detail bands.
func (t *Transform) Step(input []float64, level int) (approx, detail []float64, err error) {
	if err := validateSignal(input); err != nil {
		return nil, nil, err
	}
	if err := t.checkLevels(len(input), level); err != nil {
		return nil, nil, err
	}

	approx = make([]float64, len(input))
	detail = make([]float64, len(input))
	if err := t.analyze(approx, detail, input, level); err != nil {
		return nil, nil, err
	}
	return approx, detail, nil
}

// StepInverse undoes Step: it combines a level's approximation and detail
// bands into the previous level's approximation.
func (t *Transform) StepInverse(approx, detail []float64, level int) ([]float64, error) {
	if len(approx) != len(detail) {
		return nil, fmt.Errorf("%w: approximation has %d samples, detail %d", ErrInvalidCoefficients, len(approx), len(detail))
	}
	for _, band := range [][]float64{approx, detail} {
		if err := validateSignal(band); err != nil {
			return nil, err
		}
	}
	if err := t.checkLevels(len(approx), level); err != nil {
		return nil, err
	}

	out := make([]float64, len(approx))
	if err := t.synthesize(out, approx, detail, level); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Transform) levelFilters(level int) (*levelFilters, error) {
	return t.cache.get(level, func(level int) (*levelFilters, error) {
		return buildLevelFilters(t.filter, level)
	})
}

func (t *Transform) useFFT(n, l int) bool {
	switch t.policy {
	case FFTNever:
		return false
	case FFTAlways:
		return true
	default:
		return t.mode == conv.Periodic && t.heuristic.Load().ShouldUseFFT(n, l)
	}
}

// analyze computes one decomposition level.
func (t *Transform) analyze(approx, detail, input []float64, level int) error {
	lf, err := t.levelFilters(level)
	if err != nil {
		return err
	}

	if t.useFFT(len(input), lf.length()) {
		return t.engine.ConvolveMulti(
			[][]float64{approx, detail},
			input,
			[][]float64{lf.lowDec, lf.highDec},
		)
	}

	if err := conv.ConvolveTo(approx, input, lf.lowDec, t.mode); err != nil {
		return err
	}
	return conv.ConvolveTo(detail, input, lf.highDec, t.mode)
}

// synthesize computes dst = corr(approx, lowRec) + corr(detail, highRec) for
// one level.
func (t *Transform) synthesize(dst, approx, detail []float64, level int) error {
	lf, err := t.levelFilters(level)
	if err != nil {
		return err
	}

	high := make([]float64, len(dst))
	if t.useFFT(len(dst), lf.length()) {
		if err := t.engine.CorrelateMulti([][]float64{dst}, approx, [][]float64{lf.lowRec}); err != nil {
			return err
		}
		if err := t.engine.CorrelateMulti([][]float64{high}, detail, [][]float64{lf.highRec}); err != nil {
			return err
		}
	} else {
		if err := conv.CorrelateTo(dst, approx, lf.lowRec, t.mode); err != nil {
			return err
		}
		if err := conv.CorrelateTo(high, detail, lf.highRec, t.mode); err != nil {
			return err
		}
	}

	vecmath.AddBlockInPlace(dst, high)
	return nil
}

func (t *Transform) checkLevels(n, levels int) error {
	if levels < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLevel, levels)
	}

	maxLevels := t.MaxLevels(n)
	if maxLevels == 0 {
		return fmt.Errorf("%w: %d-tap %v filter does not fit %d samples at any level",
			ErrLevelOutOfRange, t.filter.Len(), t.filter, n)
	}
	if levels > maxLevels {
		return fmt.Errorf("%w: %d levels requested, valid range is [1, %d] for %d samples and %d taps",
			ErrLevelOutOfRange, levels, maxLevels, n, t.filter.Len())
	}
	return nil
}

func (t *Transform) checkCoefficients(c *Coefficients) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Mode != t.mode {
		return fmt.Errorf("%w: coefficients computed with %v boundaries, transform uses %v",
			ErrInvalidConfiguration, c.Mode, t.mode)
	}
	if err := validateSignal(c.Approximation); err != nil {
		return fmt.Errorf("approximation: %w", err)
	}
	for i, d := range c.Details {
		if err := validateSignal(d); err != nil {
			return fmt.Errorf("detail level %d: %w", i+1, err)
		}
	}
	return t.checkLevels(c.Len(), c.Levels())
}

func validateSignal(x []float64) error {
	if len(x) == 0 {
		return ErrEmptySignal
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: index %d is %v", ErrNonFiniteSample, i, v)
		}
	}
	return nil
}
