// Command modwtinfo prints the level layout and FFT dispatch decisions of a
// MODWT configuration.
//
// Usage:
//
//	modwtinfo [flags]
//
// For each level it shows the dilated filter length, the filter-to-signal
// ratio and whether the level runs through the FFT engine.
//
// Examples:
//
//	modwtinfo -n 16384 -wavelet db4
//	modwtinfo -n 4096 -taps 0.48,0.84,0.22,-0.13 -levels 6
//	modwtinfo -n 2048 -mode symmetric -check
//	modwtinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-modwt/dsp/conv"
	"github.com/cwbudde/algo-modwt/dsp/modwt"
	"github.com/cwbudde/algo-modwt/dsp/wavelet"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var registry = map[string]func() wavelet.Filter{
	"haar": wavelet.Haar,
	"db4":  wavelet.Daubechies4,
}

type options struct {
	n       int
	name    string
	taps    string
	levels  int
	minN    int
	ratio   float64
	mode    string
	backend string
	policy  string
	check   bool
}

func main() {
	var o options
	flag.IntVar(&o.n, "n", 16384, "signal length in samples")
	flag.StringVar(&o.name, "wavelet", "db4", "wavelet name (see -list)")
	flag.StringVar(&o.taps, "taps", "", "comma-separated low-pass taps of an orthogonal wavelet (overrides -wavelet)")
	flag.IntVar(&o.levels, "levels", 0, "levels to show (0 = maximum for -n)")
	flag.IntVar(&o.minN, "min-n", conv.DefaultFFTMinN, "FFT heuristic: minimum signal length")
	flag.Float64Var(&o.ratio, "ratio", conv.DefaultFFTMinFilterToSignalRatio, "FFT heuristic: minimum filter-to-signal ratio")
	flag.StringVar(&o.mode, "mode", "periodic", "boundary mode: periodic, zero-padding, symmetric")
	flag.StringVar(&o.backend, "backend", "algofft", "FFT backend: algofft, gonum")
	flag.StringVar(&o.policy, "fft", "auto", "FFT policy: auto, never, always")
	flag.BoolVar(&o.check, "check", false, "run a forward/inverse round trip and report the reconstruction error")
	list := flag.Bool("list", false, "list built-in wavelet names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: modwtinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints per-level filter lengths and FFT dispatch decisions of a MODWT.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  modwtinfo -n 16384 -wavelet db4\n")
		fmt.Fprintf(os.Stderr, "  modwtinfo -n 2048 -mode symmetric -check\n")
		fmt.Fprintf(os.Stderr, "  modwtinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if err := run(os.Stdout, o); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func run(w io.Writer, o options) error {
	if o.n < 1 {
		return fmt.Errorf("signal length must be positive, got %d", o.n)
	}

	filter, err := resolveFilter(o.name, o.taps)
	if err != nil {
		return err
	}

	tr, err := newTransform(filter, o)
	if err != nil {
		return err
	}

	maxJ := tr.MaxLevels(o.n)
	if maxJ == 0 {
		return fmt.Errorf("%s supports no level for a %d-sample signal", filter, o.n)
	}
	levels := o.levels
	if levels == 0 {
		levels = maxJ
	}
	if levels < 0 || levels > maxJ {
		return fmt.Errorf("levels must be in [1, %d], got %d", maxJ, levels)
	}

	printHeader(w, tr, o.n, maxJ)
	if err := printLevels(w, tr, o.n, levels); err != nil {
		return err
	}

	if o.check {
		return printCheck(w, tr, o.n, levels)
	}
	return nil
}

func resolveFilter(name, taps string) (wavelet.Filter, error) {
	if taps != "" {
		lowDec, err := parseTaps(taps)
		if err != nil {
			return wavelet.Filter{}, err
		}
		return wavelet.Orthogonal(fmt.Sprintf("custom(%d taps)", len(lowDec)), lowDec)
	}

	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return wavelet.Filter{}, fmt.Errorf("unknown wavelet %q (use -list to see available)", name)
	}
	return ctor(), nil
}

func parseTaps(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	taps := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tap %q: %w", f, err)
		}
		taps = append(taps, v)
	}
	if len(taps) == 0 {
		return nil, errors.New("no taps given")
	}
	return taps, nil
}

func parsePolicy(s string) (modwt.FFTPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return modwt.FFTAuto, nil
	case "never", "direct":
		return modwt.FFTNever, nil
	case "always", "fft":
		return modwt.FFTAlways, nil
	default:
		return 0, fmt.Errorf("unknown FFT policy %q", s)
	}
}

func newTransform(filter wavelet.Filter, o options) (*modwt.Transform, error) {
	mode, err := conv.ParseBoundaryMode(o.mode)
	if err != nil {
		return nil, err
	}
	backend, err := conv.ParseFFTBackend(o.backend)
	if err != nil {
		return nil, err
	}
	policy, err := parsePolicy(o.policy)
	if err != nil {
		return nil, err
	}

	return modwt.New(filter,
		modwt.WithBoundary(mode),
		modwt.WithFFTPolicy(policy),
		modwt.WithFFTBackend(backend),
		modwt.WithFFTHeuristic(conv.FFTHeuristic{
			MinN:                   o.minN,
			MinFilterToSignalRatio: o.ratio,
		}),
	)
}

func printHeader(w io.Writer, tr *modwt.Transform, n, maxJ int) {
	h := tr.FFTHeuristic()
	feat := cpu.DetectFeatures()

	fmt.Fprintf(w, "Wavelet:   %s (L0=%d)\n", tr.Filter(), tr.Filter().Len())
	fmt.Fprintf(w, "Signal:    N=%d, max levels=%d\n", n, maxJ)
	fmt.Fprintf(w, "Boundary:  %s\n", tr.Mode())
	fmt.Fprintf(w, "FFT:       policy=%s backend=%s min-n=%d ratio=%g\n",
		tr.FFTPolicy(), tr.Backend(), h.MinN, h.MinFilterToSignalRatio)
	fmt.Fprintf(w, "CPU:       %s sse2=%t avx2=%t neon=%t\n\n",
		feat.Architecture, feat.HasSSE2, feat.HasAVX2, feat.HasNEON)
}

func printLevels(w io.Writer, tr *modwt.Transform, n, levels int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Level\tStride\tL_j\tL_j/N\tEngine\tMargin\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t------\t---\t-----\t------\t------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for j := 1; j <= levels; j++ {
		l := wavelet.LevelLength(tr.Filter().Len(), j)
		engine := "direct"
		if tr.UsesFFT(n, j) {
			engine = "fft"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%.4f\t%s\t%d\n",
			j,
			1<<(j-1),
			l,
			float64(l)/float64(n),
			engine,
			tr.InteriorMargin(j),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printCheck(w io.Writer, tr *modwt.Transform, n, levels int) error {
	x := checkSignal(n)

	c, err := tr.Forward(x, levels)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	y, err := tr.Inverse(c)
	if err != nil {
		return fmt.Errorf("inverse: %w", err)
	}

	lo, hi := 0, n
	if tr.Mode() != conv.Periodic {
		m := tr.InteriorMargin(levels)
		lo, hi = m, n-m
	}
	if lo >= hi {
		fmt.Fprintf(w, "\nRound trip: no interior samples for %s at %d levels\n", tr.Mode(), levels)
		return nil
	}

	maxErr := 0.0
	for i := lo; i < hi; i++ {
		maxErr = math.Max(maxErr, math.Abs(y[i]-x[i]))
	}
	fmt.Fprintf(w, "\nRound trip: max |x - x'| = %.3e over [%d, %d)\n", maxErr, lo, hi)
	fmt.Fprintf(w, "Energy:     signal=%.6g coefficients=%.6g\n", vecmath.DotProduct(x, x), c.Energy())
	return nil
}

// checkSignal is two sines, a step and a ramp, all deterministic.
func checkSignal(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		t := float64(i)
		x[i] = math.Sin(2*math.Pi*t/64) + 0.25*math.Sin(2*math.Pi*t/7) + 0.001*t
		if i >= n/2 {
			x[i] += 1
		}
	}
	return x
}
