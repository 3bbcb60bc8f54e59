package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minPlanSize is the smallest transform the algo-fft worker plans.
const minPlanSize = 16

// algoFFTWorker convolves n-sample signals on an m-point complex FFT. When
// m == n the product of spectra is the circular convolution directly;
// otherwise m >= 2n-1 holds the full linear convolution, which is folded back.
type algoFFTWorker struct {
	n, m     int
	circular bool

	plan *algofft.Plan[complex128]

	signalFreq []complex128
	kernelFreq []complex128
}

func newAlgoFFTWorker(n int) (*algoFFTWorker, error) {
	m := n
	circular := true
	if !isPowerOf2(n) || n < minPlanSize {
		m = max(nextPowerOf2(2*n-1), minPlanSize)
		circular = false
	}

	plan, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	return &algoFFTWorker{
		n:          n,
		m:          m,
		circular:   circular,
		plan:       plan,
		signalFreq: make([]complex128, m),
		kernelFreq: make([]complex128, m),
	}, nil
}

func (w *algoFFTWorker) convolve(dsts [][]float64, x []float64, kernels [][]float64) error {
	load(w.signalFreq, x)
	if err := w.plan.Forward(w.signalFreq, w.signalFreq); err != nil {
		return fmt.Errorf("%w: forward: %w", ErrTransformFailed, err)
	}

	for k, kern := range kernels {
		load(w.kernelFreq, kern)
		if err := w.plan.Forward(w.kernelFreq, w.kernelFreq); err != nil {
			return fmt.Errorf("%w: forward: %w", ErrTransformFailed, err)
		}

		// Multiply in frequency domain
		for i, s := range w.signalFreq {
			w.kernelFreq[i] *= s
		}

		if err := w.plan.Inverse(w.kernelFreq, w.kernelFreq); err != nil {
			return fmt.Errorf("%w: inverse: %w", ErrTransformFailed, err)
		}

		dst := dsts[k]
		if w.circular {
			for t := range dst {
				dst[t] = real(w.kernelFreq[t])
			}
			continue
		}

		// Fold the linear result: samples at t and t+n alias to t.
		for t := range dst {
			v := real(w.kernelFreq[t])
			if t+w.n < w.m {
				v += real(w.kernelFreq[t+w.n])
			}
			dst[t] = v
		}
	}

	return nil
}

// load zero-pads src into the complex buffer dst.
func load(dst []complex128, src []float64) {
	for i, v := range src {
		dst[i] = complex(v, 0)
	}
	for i := len(src); i < len(dst); i++ {
		dst[i] = 0
	}
}
