package rng

import (
	"math"
)

// Sampler layers the bounded and unit distributions over a Generator.  Bounds
// are validated here and nowhere else: Range and DoubleRange fail before any
// draw when min > max and return min without drawing when min == max.
//
// A Sampler is single owner, like the generator it wraps.  Guard it with a
// mutex or give each goroutine its own.
type Sampler struct {
	g Generator
}

// NewSampler wraps g.  The sampler does not copy g; seeding g reseeds the sampler.
func NewSampler(g Generator) *Sampler {
	return &Sampler{g: g}
}

// Generator returns the wrapped generator
func (s *Sampler) Generator() Generator {
	return s.g
}

// Number returns one raw 32-bit draw
func (s *Sampler) Number() uint32 {
	return s.g.Uint32()
}

// Range returns a value in [min, max], both ends inclusive.  PCG32 reduces the
// span without bias by rejection.  TinyMT32 scales a unit double by the span
// and truncates, which carries a small bias that callers may depend on.
func (s *Sampler) Range(min, max uint32) (uint32, error) {
	switch {
	case min > max:
		return 0, newRangeError()
	case min == max:
		return min, nil
	}
	return s.g.between(min, uint64(max)-uint64(min)+1), nil
}

// DoubleRange returns a value in [min, max) computed as unit*(max-min)+min
func (s *Sampler) DoubleRange(min, max float64) (float64, error) {
	switch {
	case min > max:
		return 0, newRangeError()
	case min == max:
		return min, nil
	}
	v := s.g.rangeUnit()*(max-min) + min
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v, nil
}

// Double returns the generator's unit double in [0, 1)
func (s *Sampler) Double() float64 {
	return s.g.Float64()
}

// Roll returns a die face.  PCG32 numbers faces 0 to 5, TinyMT32 1 to 6.
func (s *Sampler) Roll() int {
	return int(s.g.between(uint32(s.g.dieBase()), 6))
}

// Toss returns 0 or 1
func (s *Sampler) Toss() int {
	return int(s.g.between(0, 2))
}
