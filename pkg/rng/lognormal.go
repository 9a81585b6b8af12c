package rng

import (
	"math"
)

var _ RNG = &LogNormalRNG{}

// LogNormalRNG generates Log Normal random numbers
type LogNormalRNG struct {
	mean  float64
	stdev float64
	src   Source
}

func (r *LogNormalRNG) Rand() float64 {
	return math.Exp(normal(r.src)*r.stdev + r.mean)
}

// NewLogNormalRNG draws from src.  Seed src explicitly for a reproducible series.
func NewLogNormalRNG(mean float64, stdev float64, src Source) *LogNormalRNG {
	return &LogNormalRNG{
		mean:  mean,
		stdev: stdev,
		src:   src,
	}
}

// normal returns a standard normal variate by the Box-Muller transform
func normal(src Source) float64 {
	u1 := 1 - src.Float64()
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
