package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-modwt/internal/testutil"
)

func BenchmarkConvolvePeriodicDilated(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 16384)
	base := testutil.SyntheticTaps(2, 16)

	for _, level := range []int{1, 5, 10} {
		f := testutil.Dilate(base, 1<<(level-1))
		dst := make([]float64, len(x))
		b.Run(fmt.Sprintf("level=%d", level), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = ConvolveTo(dst, x, f, Periodic)
			}
		})
	}
}

func BenchmarkCircularEngine(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 16384)
	f := testutil.Dilate(testutil.SyntheticTaps(2, 16), 512)

	for _, backend := range backends {
		e, err := NewCircularEngine(backend)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(backend.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = e.Convolve(x, f)
			}
		})
	}
}

func BenchmarkConvolveDenseLong(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	f := testutil.SyntheticTaps(3, 1024)
	dst := make([]float64, len(x))

	b.ReportAllocs()
	for b.Loop() {
		_ = ConvolveTo(dst, x, f, Periodic)
	}
}
