package wavelet

import (
	"errors"
	"math"
	"testing"
)

func TestScaleFilterLevel1(t *testing.T) {
	base := []float64{2, -4, 6}
	got, err := ScaleFilter(base, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range base {
		want := v / math.Sqrt2
		if math.Abs(got[i]-want) > 1e-15 {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want)
		}
	}
	if base[0] != 2 {
		t.Fatal("base filter was modified")
	}
}

func TestScaleFilterUpsampling(t *testing.T) {
	base := []float64{1, 2, 3}

	for level := 1; level <= 6; level++ {
		got, err := ScaleFilter(base, level)
		if err != nil {
			t.Fatalf("level %d: unexpected error: %v", level, err)
		}

		stride := 1 << (level - 1)
		wantLen := (len(base)-1)*stride + 1
		if len(got) != wantLen {
			t.Fatalf("level %d: len = %d, want %d", level, len(got), wantLen)
		}
		if LevelLength(len(base), level) != wantLen {
			t.Fatalf("level %d: LevelLength = %d, want %d", level, LevelLength(len(base), level), wantLen)
		}

		for i, v := range got {
			want := 0.0
			if i%stride == 0 {
				want = base[i/stride] / math.Sqrt2
			}
			if math.Abs(v-want) > 1e-15 {
				t.Fatalf("level %d: got[%d] = %v, want %v", level, i, v, want)
			}
		}
	}
}

func TestScaleFilterIdempotent(t *testing.T) {
	base := Daubechies4().LowDec
	for level := 1; level <= 8; level++ {
		a, err := ScaleFilter(base, level)
		if err != nil {
			t.Fatal(err)
		}
		b, err := ScaleFilter(base, level)
		if err != nil {
			t.Fatal(err)
		}
		for i := range a {
			if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
				t.Fatalf("level %d index %d: %v != %v", level, i, a[i], b[i])
			}
		}
	}
}

func TestScaleFilterErrors(t *testing.T) {
	if _, err := ScaleFilter(nil, 1); !errors.Is(err, ErrEmptyFilter) {
		t.Errorf("empty: got %v", err)
	}
	if _, err := ScaleFilter([]float64{1}, 0); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("level 0: got %v", err)
	}
	if _, err := ScaleFilter([]float64{1, 1}, MaxLevel+1); !errors.Is(err, ErrShiftOverflow) {
		t.Errorf("level beyond shift bound: got %v", err)
	}
	if _, err := ScaleFilter([]float64{1, 1}, 200); !errors.Is(err, ErrShiftOverflow) {
		t.Errorf("huge level: got %v", err)
	}
}

func TestLevelLengthInvalid(t *testing.T) {
	cases := [][2]int{{0, 1}, {2, 0}, {2, MaxLevel + 1}}
	for _, c := range cases {
		if got := LevelLength(c[0], c[1]); got != 0 {
			t.Errorf("LevelLength(%d, %d) = %d, want 0", c[0], c[1], got)
		}
	}
	if got := LevelLength(2, MaxLevel); got != 1<<MaxShift+1 {
		t.Errorf("LevelLength(2, MaxLevel) = %d", got)
	}
}

func TestMaxLevelsClosedForm(t *testing.T) {
	for _, l0 := range []int{2, 4, 6, 8, 16, 20} {
		for n := l0; n <= 5000; n += 7 {
			want := int(math.Floor(math.Log2(float64(n-1)/float64(l0-1)))) + 1
			if got := MaxLevels(n, l0); got != want {
				t.Fatalf("MaxLevels(%d, %d) = %d, want %d", n, l0, got, want)
			}
		}
	}
}

func TestMaxLevelsPowerOfTwoHaar(t *testing.T) {
	// For N = 2^k and Haar (L0 = 2), L_j = 2^(j-1)+1 <= 2^k holds up to j = k.
	for k := 1; k <= 16; k++ {
		if got := MaxLevels(1<<k, 2); got != k {
			t.Errorf("MaxLevels(2^%d, 2) = %d, want %d", k, got, k)
		}
	}
}

func TestMaxLevelsBoundary(t *testing.T) {
	for _, l0 := range []int{2, 4, 16} {
		for _, n := range []int{1, 3, 17, 100, 1024, 16384} {
			j := MaxLevels(n, l0)
			if j > 0 && LevelLength(l0, j) > n {
				t.Fatalf("MaxLevels(%d, %d) = %d but L_j = %d > N", n, l0, j, LevelLength(l0, j))
			}
			if next := LevelLength(l0, j+1); next != 0 && next <= n {
				t.Fatalf("MaxLevels(%d, %d) = %d but level %d also fits", n, l0, j, j+1)
			}
		}
	}
}

func TestMaxLevelsMonotoneInFilterLength(t *testing.T) {
	for _, n := range []int{8, 100, 1000, 4096} {
		prev := MaxLevels(n, 2)
		for l0 := 3; l0 <= 40; l0++ {
			cur := MaxLevels(n, l0)
			if cur > prev {
				t.Fatalf("MaxLevels(%d, %d) = %d > MaxLevels(%d, %d) = %d", n, l0, cur, n, l0-1, prev)
			}
			prev = cur
		}
	}
}

func TestMaxLevelsDegenerate(t *testing.T) {
	if got := MaxLevels(0, 2); got != 0 {
		t.Errorf("MaxLevels(0, 2) = %d", got)
	}
	if got := MaxLevels(1, 2); got != 0 {
		t.Errorf("MaxLevels(1, 2) = %d", got)
	}
	if got := MaxLevels(5, 1); got != MaxLevel {
		t.Errorf("MaxLevels(5, 1) = %d, want %d", got, MaxLevel)
	}
}
