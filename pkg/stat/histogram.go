// Package stat measures how closely a stream of draws matches the uniform
// distribution it is supposed to follow
package stat

import (
	"math"
)

// Histogram counts integer outcomes over the inclusive interval [lo, hi]
type Histogram struct {
	lo      int
	counts  []int
	total   int
	outside int
}

// NewHistogram returns an empty histogram over [lo, hi].  Swapped bounds are
// put in order.
func NewHistogram(lo, hi int) *Histogram {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Histogram{
		lo:     lo,
		counts: make([]int, hi-lo+1),
	}
}

// Record adds an observation.  Values outside the interval are only counted by Outside.
func (h *Histogram) Record(v int) {
	i := v - h.lo
	if i < 0 || i >= len(h.counts) {
		h.outside++
		return
	}
	h.counts[i]++
	h.total++
}

// Count returns the number of observations of v
func (h *Histogram) Count(v int) int {
	i := v - h.lo
	if i < 0 || i >= len(h.counts) {
		return 0
	}
	return h.counts[i]
}

// Total returns the number of observations inside the interval
func (h *Histogram) Total() int {
	return h.total
}

// Outside returns the number of observations that fell outside the interval
func (h *Histogram) Outside() int {
	return h.outside
}

// Buckets returns the number of distinct outcomes in the interval
func (h *Histogram) Buckets() int {
	return len(h.counts)
}

// Frequencies returns the observed share of each outcome from lo to hi
func (h *Histogram) Frequencies() []float64 {
	out := make([]float64, len(h.counts))
	if h.total == 0 {
		return out
	}
	for i, c := range h.counts {
		out[i] = float64(c) / float64(h.total)
	}
	return out
}

// ChiSquare returns Pearson's statistic against equal expected counts
func (h *Histogram) ChiSquare() float64 {
	if h.total == 0 {
		return 0
	}
	expected := float64(h.total) / float64(len(h.counts))
	chi := 0.0
	for _, c := range h.counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// Bias returns the largest relative deviation of any outcome from its expected
// count
func (h *Histogram) Bias() float64 {
	if h.total == 0 {
		return 0
	}
	expected := float64(h.total) / float64(len(h.counts))
	worst := 0.0
	for _, c := range h.counts {
		worst = math.Max(worst, math.Abs(float64(c)-expected)/expected)
	}
	return worst
}
