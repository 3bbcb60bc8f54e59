package conv

// tap is a non-zero filter coefficient and its offset.
type tap struct {
	offset int
	weight float64
}

// nonZeroTaps compacts filter to its non-zero coefficients, in increasing
// offset order. Skipping zeros leaves every partial sum unchanged.
func nonZeroTaps(filter []float64) []tap {
	n := 0
	for _, v := range filter {
		if v != 0 {
			n++
		}
	}

	taps := make([]tap, 0, n)
	for l, v := range filter {
		if v != 0 {
			taps = append(taps, tap{offset: l, weight: v})
		}
	}
	return taps
}

// direction distinguishes analysis (x[t-l]) from synthesis (x[t+l]).
type direction int

const (
	analysis  direction = -1
	synthesis direction = 1
)

// kernel computes dst[t] = Σ w·x[t + dir·offset] for t in [lo, hi). It is the
// single loop behind every boundary mode and both directions.
func kernel(dst, x []float64, taps []tap, dir direction, resolve indexMap, lo, hi int) {
	n := len(x)
	d := int(dir)

	for t := lo; t < hi; t++ {
		sum := 0.0
		for _, tp := range taps {
			idx := t + d*tp.offset
			if idx < 0 || idx >= n {
				var ok bool
				if idx, ok = resolve(idx, n); !ok {
					continue
				}
			}
			sum += tp.weight * x[idx]
		}
		dst[t] = sum
	}
}
