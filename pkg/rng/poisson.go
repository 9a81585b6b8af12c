package rng

import (
	"math"
)

var _ RNG = &PoissonRNG{}

// PoissonRNG generates Poisson distributed numbers using Knuth's algorithm
type PoissonRNG struct {
	lambda float64
	src    Source
}

func (r *PoissonRNG) Rand() float64 {
	// Knuth's algorithm
	L := math.Pow(math.E, -r.lambda)
	var k int64 = 0
	var p float64 = 1.0

	for p > L {
		k++
		p = p * r.src.Float64()
	}
	return float64(k - 1)
}

func NewPoissonRNG(lambda float64, src Source) *PoissonRNG {
	return &PoissonRNG{
		lambda: lambda,
		src:    src,
	}
}
