package rng

import (
	"math"

	"github.com/BTBurke/prng/pkg/entropy"
)

const (
	pcg32State      = 0x853c49e6748fea9b
	pcg32Increment  = 0xda3e39cb94b95bdb
	pcg32Multiplier = 6364136223846793005
)

// PCG32 is a permuted congruential generator with 64 bits of state and 32 bit
// output (XSH-RR).  The zero value behaves like NewPCG32().
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 returns a generator holding the fixed default initializer.  It is
// usable immediately but every unseeded instance yields the same stream.
func NewPCG32() *PCG32 {
	return &PCG32{state: pcg32State, inc: pcg32Increment}
}

// Algorithm returns PCG
func (p *PCG32) Algorithm() Algorithm {
	return PCG
}

// SetSeed deterministically reinitializes the generator.  stream selects one
// of 2^63 independent sequences; any pair of inputs is valid.
func (p *PCG32) SetSeed(state, stream uint64) {
	p.state = 0
	p.inc = stream<<1 | 1
	p.step()
	p.state += state
	p.step()
}

// Seed treats a state of 0 as a request for entropy, otherwise it is
// SetSeed(state, stream).
func (p *PCG32) Seed(state, stream uint64, src entropy.Provider) error {
	if state == 0 {
		return p.SeedFrom(src)
	}
	p.SetSeed(state, stream)
	return nil
}

// SeedFrom derives both the state and the stream from two 64-bit entropy
// blocks.  A nil provider uses entropy.Default.
func (p *PCG32) SeedFrom(src entropy.Provider) error {
	words, err := entropy.Uint64s(provider(src), 2)
	if err != nil {
		return err
	}
	p.SetSeed(words[0], words[1])
	return nil
}

func (p *PCG32) step() {
	p.state = p.state*pcg32Multiplier + p.inc
}

// Uint32 advances the state one LCG step and returns the permuted pre-advance state
func (p *PCG32) Uint32() uint32 {
	// inc is odd for every seeded or constructed generator
	if p.inc == 0 {
		*p = *NewPCG32()
	}
	old := p.state
	p.step()

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return xorshifted>>rot | xorshifted<<((-rot)&31)
}

// Bounded returns a uniform value in [0, bound) without modulo bias by
// rejecting raw draws below 2^32 mod bound.  A bound of 0 returns 0 without
// drawing.
func (p *PCG32) Bounded(bound uint32) uint32 {
	if bound == 0 {
		return 0
	}
	threshold := -bound % bound
	for {
		r := p.Uint32()
		if r >= threshold {
			return r % bound
		}
	}
}

// Float64 returns Uint32() * 2^-32
func (p *PCG32) Float64() float64 {
	return math.Ldexp(float64(p.Uint32()), -32)
}

// Advance jumps the generator forward by delta steps in O(log delta)
func (p *PCG32) Advance(delta uint64) {
	if p.inc == 0 {
		*p = *NewPCG32()
	}
	accMult, accPlus := uint64(1), uint64(0)
	curMult, curPlus := uint64(pcg32Multiplier), p.inc
	for delta > 0 {
		if delta&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		delta /= 2
	}
	p.state = accMult*p.state + accPlus
}

func (p *PCG32) between(min uint32, span uint64) uint32 {
	if span > math.MaxUint32 {
		return p.Uint32() + min
	}
	return p.Bounded(uint32(span)) + min
}

func (p *PCG32) rangeUnit() float64 {
	return float64(p.Uint32()) / float64(math.MaxUint32)
}

func (p *PCG32) dieBase() int {
	return 0
}
