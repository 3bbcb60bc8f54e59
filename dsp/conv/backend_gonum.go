package conv

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// gonumWorker uses an exact n-point real FFT. gonum's inverse is
// unnormalized, so results are scaled by 1/n.
type gonumWorker struct {
	n   int
	fft *fourier.FFT

	signalFreq []complex128
	kernelFreq []complex128
}

func newGonumWorker(n int) *gonumWorker {
	bins := n/2 + 1
	return &gonumWorker{
		n:          n,
		fft:        fourier.NewFFT(n),
		signalFreq: make([]complex128, bins),
		kernelFreq: make([]complex128, bins),
	}
}

func (w *gonumWorker) convolve(dsts [][]float64, x []float64, kernels [][]float64) error {
	w.fft.Coefficients(w.signalFreq, x)
	scale := 1 / float64(w.n)

	for k, kern := range kernels {
		w.fft.Coefficients(w.kernelFreq, kern)
		for i, s := range w.signalFreq {
			w.kernelFreq[i] *= s
		}

		w.fft.Sequence(dsts[k], w.kernelFreq)
		vecmath.ScaleBlockInPlace(dsts[k], scale)
	}

	return nil
}
