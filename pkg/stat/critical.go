package stat

import (
	"fmt"
	"math"
)

// Significance is the Type I error rate accepted when testing a histogram for
// uniformity, e.g. 0.01
type Significance float64

// Critical returns the chi square value exceeded with probability s under the
// null hypothesis for df degrees of freedom, using the Wilson-Hilferty cube
// approximation.
func (s Significance) Critical(df int) (float64, error) {
	if df < 1 {
		return 0, fmt.Errorf("degrees of freedom must be >= 1, got %d", df)
	}
	if s <= 0 || s >= 1 || math.IsNaN(float64(s)) {
		return 0, fmt.Errorf("significance must be in (0, 1), got %f", float64(s))
	}
	z := math.Sqrt2 * math.Erfinv(1-2*float64(s))
	k := float64(df)
	c := 1 - 2/(9*k) + z*math.Sqrt(2/(9*k))
	return k * c * c * c, nil
}

// Uniform reports whether h is consistent with a uniform distribution at the
// given significance.  Histograms with fewer than two buckets or any
// observation outside their interval are never uniform.
func Uniform(h *Histogram, s Significance) bool {
	if h.Buckets() < 2 || h.Outside() > 0 {
		return false
	}
	crit, err := s.Critical(h.Buckets() - 1)
	if err != nil {
		return false
	}
	return h.ChiSquare() <= crit
}
