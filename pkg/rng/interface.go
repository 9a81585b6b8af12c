package rng

import (
	"fmt"
	"strings"

	"github.com/BTBurke/prng/pkg/entropy"
)

// RNG is a random number generator
type RNG interface {
	Rand() float64
}

// Source is the raw primitive every generator exposes.  Float64 is the
// generator's own unit double path in [0, 1).
type Source interface {
	Uint32() uint32
	Float64() float64
}

// Generator is the closed set of algorithms the Sampler knows how to drive.  The
// unexported methods carry the per-algorithm sampling policy, so the only
// implementations are *PCG32 and *TinyMT32.
type Generator interface {
	Source
	Algorithm() Algorithm
	// SeedFrom replaces the state with one derived from entropy
	SeedFrom(p entropy.Provider) error

	// between returns a value in [min, min+span) using the algorithm's own
	// reduction.  span is in [1, 2^32].
	between(min uint32, span uint64) uint32
	// rangeUnit is the unit value used by DoubleRange
	rangeUnit() float64
	// dieBase is the lowest face returned by Roll
	dieBase() int
}

var _ Generator = &PCG32{}
var _ Generator = &TinyMT32{}

// Algorithm names a generator variant
type Algorithm string

const (
	PCG    Algorithm = "pcg32"
	TinyMT Algorithm = "tinymt32"
)

// ParseAlgorithm accepts the algorithm name in any case
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case PCG, TinyMT:
		return a, nil
	default:
		return "", ErrUnknownAlgorithm{Msg: fmt.Sprintf("unknown algorithm: %s", name)}
	}
}

// New returns a generator of the requested algorithm in its default, unseeded state
func New(a Algorithm) (Generator, error) {
	switch a {
	case PCG:
		return NewPCG32(), nil
	case TinyMT:
		return NewTinyMT32(), nil
	default:
		return nil, ErrUnknownAlgorithm{Msg: fmt.Sprintf("unknown algorithm: %s", a)}
	}
}

func provider(p entropy.Provider) entropy.Provider {
	if p == nil {
		return entropy.Default
	}
	return p
}
