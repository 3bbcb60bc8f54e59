package conv

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-modwt/internal/testutil"
)

func TestConvolveModes(t *testing.T) {
	x := []float64{1, 2, 3}
	delay := []float64{0, 1}

	tests := []struct {
		name     string
		mode     BoundaryMode
		conv     []float64
		corr     []float64
		convFunc func([]float64, []float64) ([]float64, error)
	}{
		{"periodic", Periodic, []float64{3, 1, 2}, []float64{2, 3, 1}, ConvolvePeriodic},
		{"zero padding", ZeroPadding, []float64{0, 1, 2}, []float64{2, 3, 0}, ConvolveZeroPad},
		{"symmetric", Symmetric, []float64{1, 1, 2}, []float64{2, 3, 3}, ConvolveSymmetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convolve(x, delay, tt.mode)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.conv, 0)

			got, err = tt.convFunc(x, delay)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.conv, 0)

			got, err = Correlate(x, delay, tt.mode)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.corr, 0)
		})
	}
}

func TestConvolvePeriodicMatchesReference(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16, 31, 100} {
		x := testutil.DeterministicNoise(int64(n), 1, n)
		for _, l := range []int{1, 2, 5, 2*n + 3} {
			f := testutil.SyntheticTaps(int64(l), l)
			got, err := ConvolvePeriodic(x, f)
			if err != nil {
				t.Fatalf("n=%d l=%d: %v", n, l, err)
			}
			testutil.RequireSliceNearlyEqual(t, got, testutil.ReferencePeriodic(x, f), 1e-12)
		}
	}
}

func TestConvolveSkipsZeroTapsExactly(t *testing.T) {
	x := testutil.DeterministicNoise(3, 1, 64)
	base := testutil.SyntheticTaps(4, 4)
	dilated := testutil.Dilate(base, 8)

	got, err := ConvolvePeriodic(x, dilated)
	if err != nil {
		t.Fatal(err)
	}

	// Dense evaluation in the same tap order.
	want := make([]float64, len(x))
	for t0 := range want {
		sum := 0.0
		for i, v := range base {
			idx := ((t0-i*8)%64 + 64) % 64
			sum += v * x[idx]
		}
		want[t0] = sum
	}
	testutil.RequireBitIdentical(t, got, want)
}

func TestSymmetricReflectionFarOutside(t *testing.T) {
	// Filter longer than the signal forces indices beyond one reflection.
	x := []float64{1, 2, 3}
	f := testutil.Impulse(8, 7) // out[t] = x[t-7]
	got, err := ConvolveSymmetric(x, f)
	if err != nil {
		t.Fatal(err)
	}

	// Extended sequence with period 6: x0 x1 x2 x2 x1 x0.
	ext := []float64{1, 2, 3, 3, 2, 1}
	for t0 := range got {
		idx := ((t0-7)%6 + 6) % 6
		if got[t0] != ext[idx] {
			t.Fatalf("got[%d] = %v, want %v", t0, got[t0], ext[idx])
		}
	}
}

func TestCorrelateIsAdjoint(t *testing.T) {
	x := testutil.DeterministicNoise(10, 1, 50)
	y := testutil.DeterministicNoise(11, 1, 50)
	f := testutil.Dilate(testutil.SyntheticTaps(12, 6), 3)

	for _, mode := range []BoundaryMode{Periodic, ZeroPadding} {
		ax, err := Convolve(x, f, mode)
		if err != nil {
			t.Fatal(err)
		}
		aty, err := Correlate(y, f, mode)
		if err != nil {
			t.Fatal(err)
		}

		var lhs, rhs float64
		for i := range x {
			lhs += ax[i] * y[i]
			rhs += x[i] * aty[i]
		}
		if math.Abs(lhs-rhs) > 1e-10 {
			t.Errorf("%v: <Ax, y> = %v, <x, Aᵀy> = %v", mode, lhs, rhs)
		}
	}
}

func TestConvolveRangeToChunks(t *testing.T) {
	x := testutil.Mixture(5, 333)
	f := testutil.Dilate(testutil.SyntheticTaps(6, 8), 4)

	for _, mode := range []BoundaryMode{Periodic, ZeroPadding, Symmetric} {
		full, err := Convolve(x, f, mode)
		if err != nil {
			t.Fatal(err)
		}
		fullCorr, err := Correlate(x, f, mode)
		if err != nil {
			t.Fatal(err)
		}

		chunked := make([]float64, len(x))
		chunkedCorr := make([]float64, len(x))
		var g errgroup.Group
		for lo := 0; lo < len(x); lo += 50 {
			hi := min(lo+50, len(x))
			g.Go(func() error {
				if err := ConvolveRangeTo(chunked, x, f, mode, lo, hi); err != nil {
					return err
				}
				return CorrelateRangeTo(chunkedCorr, x, f, mode, lo, hi)
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatal(err)
		}

		testutil.RequireBitIdentical(t, chunked, full)
		testutil.RequireBitIdentical(t, chunkedCorr, fullCorr)
	}
}

func TestConvolveRangeToLeavesOutsideUntouched(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	dst := []float64{-1, -1, -1, -1}
	if err := ConvolveRangeTo(dst, x, []float64{1}, Periodic, 1, 3); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{-1, 2, 3, -1}, 0)
}

func TestConvolveErrors(t *testing.T) {
	x := []float64{1, 2, 3}
	f := []float64{1}

	if _, err := Convolve(nil, f, Periodic); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Convolve(x, nil, Periodic); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
	if _, err := Convolve(x, f, BoundaryMode(9)); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
	if err := ConvolveTo(make([]float64, 2), x, f, Periodic); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if err := ConvolveRangeTo(make([]float64, 3), x, f, Periodic, 2, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if err := CorrelateRangeTo(make([]float64, 3), x, f, Periodic, 0, 4); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestParseBoundaryMode(t *testing.T) {
	for _, mode := range []BoundaryMode{Periodic, ZeroPadding, Symmetric} {
		got, err := ParseBoundaryMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseBoundaryMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if got, err := ParseBoundaryMode(" SYM "); err != nil || got != Symmetric {
		t.Errorf("alias: got %v, %v", got, err)
	}
	if _, err := ParseBoundaryMode("mirror-ish"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
	if s := BoundaryMode(7).String(); s != "BoundaryMode(7)" {
		t.Errorf("String = %q", s)
	}
}
