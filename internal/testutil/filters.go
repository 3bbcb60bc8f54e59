package testutil

import "math/rand"

// SyntheticTaps returns n reproducible filter taps in [-1, 1).
// They carry no wavelet properties and serve convolution parity tests.
func SyntheticTaps(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// Dilate spreads taps stride samples apart, inserting stride-1 zeros
// between consecutive taps.
func Dilate(taps []float64, stride int) []float64 {
	if len(taps) == 0 {
		return nil
	}
	out := make([]float64, (len(taps)-1)*stride+1)
	for i, v := range taps {
		out[i*stride] = v
	}
	return out
}

// ReferencePeriodic is the textbook periodic convolution
// out[t] = sum_l f[l] * x[(t-l) mod N], used as an oracle.
func ReferencePeriodic(x, f []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for t := range out {
		sum := 0.0
		for l, fl := range f {
			idx := ((t-l)%n + n) % n
			sum += fl * x[idx]
		}
		out[t] = sum
	}
	return out
}
