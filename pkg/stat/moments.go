package stat

import (
	"math"
)

// Mean returns the sample mean, or 0 for an empty sample
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	s := 0.0
	for _, v := range values {
		s = s + v
	}
	return s / float64(len(values))
}

// Variance returns the unbiased sample variance around mean.  Samples with
// fewer than two observations have zero variance.
func Variance(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	s := 0.0
	for _, v := range values {
		s = s + math.Pow(v-mean, 2)
	}
	return s / float64(len(values)-1)
}
