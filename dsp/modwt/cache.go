package modwt

import (
	"fmt"
	"slices"
	"sync"

	"github.com/cwbudde/algo-modwt/dsp/wavelet"
)

// levelFilters holds the four scaled, upsampled filters of one level.
type levelFilters struct {
	lowDec, highDec []float64
	lowRec, highRec []float64
}

// length is the effective filter length L_j.
func (lf *levelFilters) length() int {
	return len(lf.lowDec)
}

func buildLevelFilters(f wavelet.Filter, level int) (*levelFilters, error) {
	var (
		lf  levelFilters
		err error
	)

	targets := [...]struct {
		dst  *[]float64
		base []float64
	}{
		{&lf.lowDec, f.LowDec},
		{&lf.highDec, f.HighDec},
		{&lf.lowRec, f.LowRec},
		{&lf.highRec, f.HighRec},
	}
	for _, tg := range targets {
		if *tg.dst, err = wavelet.ScaleFilter(tg.base, level); err != nil {
			return nil, fmt.Errorf("modwt: level %d filter: %w", level, err)
		}
	}

	return &lf, nil
}

// filterCache materializes level filters on first use. Entries are never
// evicted; there are at most wavelet.MaxLevel of them.
type filterCache struct {
	mu     sync.RWMutex
	levels map[int]*levelFilters
}

func newFilterCache() *filterCache {
	return &filterCache{levels: make(map[int]*levelFilters)}
}

// get returns the cached filters for level, building them with build if
// absent. Concurrent callers for the same level observe the same value.
func (c *filterCache) get(level int, build func(int) (*levelFilters, error)) (*levelFilters, error) {
	c.mu.RLock()
	lf, ok := c.levels[level]
	c.mu.RUnlock()

	if ok {
		return lf, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if lf, ok := c.levels[level]; ok {
		return lf, nil
	}

	lf, err := build(level)
	if err != nil {
		return nil, err
	}
	c.levels[level] = lf
	return lf, nil
}

// keys returns the cached levels in ascending order.
func (c *filterCache) keys() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]int, 0, len(c.levels))
	for level := range c.levels {
		out = append(out, level)
	}
	slices.Sort(out)
	return out
}
