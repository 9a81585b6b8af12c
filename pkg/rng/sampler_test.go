package rng

import (
	"math"
	"testing"

	"github.com/BTBurke/prng/pkg/stat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedUnit is a generator whose range unit is pinned, used to reach the top
// of a double range
type fixedUnit struct {
	*PCG32
	unit float64
}

func (f fixedUnit) rangeUnit() float64 {
	return f.unit
}

// pcgUnit is the unit value PCG32 feeds to DoubleRange for a raw draw
func pcgUnit(raw uint32) float64 {
	return float64(raw) / float64(math.MaxUint32)
}

type pair struct {
	Name   string
	Fresh  func() Generator
	Replay func() Generator
}

func generators() []pair {
	return []pair{
		{Name: "pcg32", Fresh: func() Generator { return seededPCG(42, 54) }, Replay: func() Generator { return seededPCG(42, 54) }},
		{Name: "tinymt32", Fresh: func() Generator { return seededTinyMT(1) }, Replay: func() Generator { return seededTinyMT(1) }},
	}
}

func TestRangeBoundaryPolicy(t *testing.T) {
	for _, g := range generators() {
		t.Run(g.Name, func(t *testing.T) {
			s := NewSampler(g.Fresh())
			for i := 0; i < 10; i++ {
				v, err := s.Range(5, 5)
				require.NoError(t, err)
				assert.Equal(t, uint32(5), v)

				d, err := s.DoubleRange(2.5, 2.5)
				require.NoError(t, err)
				assert.Equal(t, 2.5, d)

				_, err = s.Range(5, 3)
				assert.IsType(t, RangeError{}, err)
				assert.EqualError(t, err, "min cannot be bigger than max")

				_, err = s.DoubleRange(5, 3)
				assert.IsType(t, RangeError{}, err)
			}
			assert.Equal(t, g.Replay().Uint32(), s.Number(), "equal and inverted bounds should not consume a draw")
		})
	}
}

func TestRangeInclusive(t *testing.T) {
	for _, g := range generators() {
		t.Run(g.Name, func(t *testing.T) {
			s := NewSampler(g.Fresh())
			h := stat.NewHistogram(0, 3)
			for i := 0; i < 100000; i++ {
				v, err := s.Range(0, 3)
				require.NoError(t, err)
				require.True(t, v <= 3, "out of range: %d", v)
				h.Record(int(v))
			}
			for v := 0; v <= 3; v++ {
				assert.NotZero(t, h.Count(v), "value %d never drawn", v)
			}
			assert.True(t, stat.Uniform(h, stat.Significance(0.0001)), "chi square %f", h.ChiSquare())
		})
	}
}

func TestRangeReductionRules(t *testing.T) {
	pcg := NewSampler(seededPCG(42, 54))
	v, err := pcg.Range(10, 15)
	require.NoError(t, err)
	assert.Equal(t, seededPCG(42, 54).Bounded(6)+10, v, "pcg32 should reduce the span by rejection")

	tmt := NewSampler(seededTinyMT(1))
	replay := seededTinyMT(1)
	for i := 0; i < 1000; i++ {
		v, err := tmt.Range(1000, 1000000)
		require.NoError(t, err)
		assert.Equal(t, uint32(float64(1000000-1000+1)*replay.Float64()+1000), v, "tinymt32 should scale a unit double")
	}
}

func TestRangeFullSpan(t *testing.T) {
	pcg := NewSampler(seededPCG(42, 54))
	v, err := pcg.Range(0, math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xa15c02b7), v)

	tmt := NewSampler(seededTinyMT(1))
	v, err = tmt.Range(0, math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, uint32(2545341989), v)

	for _, g := range generators() {
		s := NewSampler(g.Fresh())
		for i := 0; i < 1000; i++ {
			v, err := s.Range(math.MaxUint32-5, math.MaxUint32)
			require.NoError(t, err)
			assert.True(t, v >= math.MaxUint32-5, "%s: out of range: %d", g.Name, v)
		}
	}
}

func TestDoubleRange(t *testing.T) {
	tt := []struct {
		Name string
		Min  float64
		Max  float64
	}{
		{Name: "unit", Min: 0, Max: 1},
		{Name: "negative", Min: -10, Max: -2},
		{Name: "straddle", Min: -1e6, Max: 1e6},
		{Name: "narrow", Min: 1, Max: math.Nextafter(1, 2)},
	}
	for _, g := range generators() {
		for _, tc := range tt {
			t.Run(g.Name+"/"+tc.Name, func(t *testing.T) {
				s := NewSampler(g.Fresh())
				for i := 0; i < 10000; i++ {
					v, err := s.DoubleRange(tc.Min, tc.Max)
					require.NoError(t, err)
					require.True(t, v >= tc.Min && v < tc.Max, "%v not in [%v, %v)", v, tc.Min, tc.Max)
				}
			})
		}
	}
}

func TestDoubleRangeScaling(t *testing.T) {
	pcg := NewSampler(seededPCG(42, 54))
	v, err := pcg.DoubleRange(10, 20)
	require.NoError(t, err)
	assert.Equal(t, pcgUnit(0xa15c02b7)*10+10, v)

	tmt := NewSampler(seededTinyMT(1))
	v, err = tmt.DoubleRange(10, 20)
	require.NoError(t, err)
	unit := seededTinyMT(1).Float64()
	assert.Equal(t, unit*10+10, v)
}

func TestDoubleRangeNeverReturnsMax(t *testing.T) {
	s := NewSampler(fixedUnit{PCG32: NewPCG32(), unit: 1})
	v, err := s.DoubleRange(1, 2)
	require.NoError(t, err)
	assert.Equal(t, math.Nextafter(2, 1), v)
}

func TestDouble(t *testing.T) {
	assert.Equal(t, 0.6303102204110473, NewSampler(seededPCG(42, 54)).Double())
	assert.Equal(t, 0.5926336136180907, NewSampler(seededTinyMT(1)).Double())
}

func TestRollAndToss(t *testing.T) {
	tt := []struct {
		Name   string
		Gen    Generator
		Faces  []int
		Golden []int
	}{
		{Name: "pcg32", Gen: seededPCG(42, 54), Faces: []int{0, 1, 2, 3, 4, 5}, Golden: []int{3, 3, 2, 1, 1, 4}},
		{Name: "tinymt32", Gen: seededTinyMT(1), Faces: []int{1, 2, 3, 4, 5, 6}, Golden: []int{4, 2, 6, 4, 6, 6}},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			s := NewSampler(tc.Gen)
			golden := make([]int, len(tc.Golden))
			for i := range golden {
				golden[i] = s.Roll()
			}
			assert.Equal(t, tc.Golden, golden)

			rolls := map[int]int{}
			tosses := map[int]int{}
			for i := 0; i < 6000; i++ {
				rolls[s.Roll()]++
				tosses[s.Toss()]++
			}
			for v := range rolls {
				assert.Contains(t, tc.Faces, v)
			}
			assert.Len(t, rolls, 6)
			for v := range tosses {
				assert.Contains(t, []int{0, 1}, v)
			}
			assert.Len(t, tosses, 2)
		})
	}
}

func TestDraw(t *testing.T) {
	logNormal := NewLogNormalRNG(0.5, 2, seededPCG(42, 54)).Rand()
	poisson := NewPoissonRNG(4, seededPCG(42, 54)).Rand()
	nan := math.NaN()
	inf := math.Inf(1)

	tt := []struct {
		Name   string
		Op     Op
		Min    float64
		Max    float64
		Expect float64
		Error  bool
	}{
		{Name: "number", Op: OpNumber, Expect: float64(0xa15c02b7)},
		{Name: "double", Op: OpDouble, Expect: 0.6303102204110473},
		{Name: "range", Op: OpRange, Min: 1, Max: 6, Expect: 4},
		{Name: "range equal", Op: OpRange, Min: 7, Max: 7, Expect: 7},
		{Name: "range inverted", Op: OpRange, Min: 7, Max: 6, Error: true},
		{Name: "range negative", Op: OpRange, Min: -1, Max: 6, Error: true},
		{Name: "double range", Op: OpDoubleRange, Min: 10, Max: 20, Expect: pcgUnit(0xa15c02b7)*10 + 10},
		{Name: "roll", Op: OpRoll, Expect: 3},
		{Name: "toss", Op: OpToss, Expect: 1},
		{Name: "lognormal", Op: OpLogNormal, Min: 0.5, Max: 2, Expect: logNormal},
		{Name: "lognormal negative stdev", Op: OpLogNormal, Min: 0, Max: -1, Error: true},
		{Name: "poisson", Op: OpPoisson, Min: 4, Expect: poisson},
		{Name: "poisson zero lambda", Op: OpPoisson, Min: 0, Error: true},
		{Name: "poisson lambda too large", Op: OpPoisson, Min: MaxPoissonLambda + 1, Error: true},
		{Name: "range NaN min", Op: OpRange, Min: nan, Max: 3, Error: true},
		{Name: "range NaN max", Op: OpRange, Min: 0, Max: nan, Error: true},
		{Name: "double range infinite", Op: OpDoubleRange, Min: -inf, Max: inf, Error: true},
		{Name: "double range NaN", Op: OpDoubleRange, Min: nan, Max: 1, Error: true},
		{Name: "lognormal infinite mean", Op: OpLogNormal, Min: inf, Max: 1, Error: true},
		{Name: "poisson NaN lambda", Op: OpPoisson, Min: nan, Error: true},
		{Name: "unbounded op ignores bounds", Op: OpNumber, Min: nan, Max: inf, Expect: float64(0xa15c02b7)},
		{Name: "unknown", Op: Op("shuffle"), Error: true},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			s := NewSampler(seededPCG(42, 54))
			v, err := s.Draw(tc.Op, tc.Min, tc.Max)
			if tc.Error {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Expect, v)
		})
	}
}

func TestDrawBoundsErrors(t *testing.T) {
	s := NewSampler(seededPCG(42, 54))
	_, err := s.Draw(OpRange, math.NaN(), 3)
	assert.IsType(t, ErrBounds{}, err)
	_, err = s.Draw(OpDoubleRange, math.Inf(-1), math.Inf(1))
	assert.IsType(t, ErrBounds{}, err)
	_, err = s.Draw(OpRange, 7, 6)
	assert.IsType(t, RangeError{}, err, "inverted finite bounds stay a RangeError")
	assert.Equal(t, float64(0xa15c02b7), float64(s.Number()), "rejected draws must not advance the generator")
}

func TestParse(t *testing.T) {
	a, err := ParseAlgorithm(" PCG32 ")
	assert.NoError(t, err)
	assert.Equal(t, PCG, a)
	_, err = ParseAlgorithm("mt19937")
	assert.IsType(t, ErrUnknownAlgorithm{}, err)

	op, err := ParseOp("Double-Range")
	assert.NoError(t, err)
	assert.Equal(t, OpDoubleRange, op)
	assert.True(t, op.Bounded())
	assert.False(t, OpRoll.Bounded())
	op, err = ParseOp("Poisson")
	assert.NoError(t, err)
	assert.Equal(t, OpPoisson, op)
	_, err = ParseOp("shuffle")
	assert.IsType(t, ErrUnknownOp{}, err)

	for _, alg := range []Algorithm{PCG, TinyMT} {
		g, err := New(alg)
		require.NoError(t, err)
		assert.Equal(t, alg, g.Algorithm())
	}
	_, err = New(Algorithm("xorshift"))
	assert.Error(t, err)
}
