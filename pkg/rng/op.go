package rng

import (
	"fmt"
	"math"
	"strings"
)

// Op names one of the sampling operations so it can be selected from a
// command line or a remote request
type Op string

const (
	OpNumber      Op = "number"
	OpDouble      Op = "double"
	OpRange       Op = "range"
	OpDoubleRange Op = "double-range"
	OpRoll        Op = "roll"
	OpToss        Op = "toss"
	// OpLogNormal reads the mean of the underlying normal from min and its
	// standard deviation from max
	OpLogNormal Op = "lognormal"
	// OpPoisson reads lambda from min
	OpPoisson Op = "poisson"
)

// MaxPoissonLambda bounds OpPoisson.  Larger rates underflow e^-lambda.
const MaxPoissonLambda = 700

// Ops lists every operation in a stable order
var Ops = []Op{OpNumber, OpDouble, OpRange, OpDoubleRange, OpRoll, OpToss, OpLogNormal, OpPoisson}

// ParseOp accepts an operation name in any case
func ParseOp(name string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	for _, o := range Ops {
		if o == op {
			return op, nil
		}
	}
	return "", ErrUnknownOp{Msg: fmt.Sprintf("unknown operation: %s", name)}
}

// Bounded reports whether the operation reads min or max
func (o Op) Bounded() bool {
	switch o {
	case OpRange, OpDoubleRange, OpLogNormal, OpPoisson:
		return true
	default:
		return false
	}
}

// Draw performs one operation.  Integer results are returned exactly as
// float64.  Bounds must be finite.  For OpRange they are truncated to
// integers and must lie in [0, 2^32-1].
func (s *Sampler) Draw(op Op, min, max float64) (float64, error) {
	if op.Bounded() && (!finite(min) || !finite(max)) {
		return 0, ErrBounds{Msg: fmt.Sprintf("bounds must be finite, got min=%v max=%v", min, max)}
	}
	switch op {
	case OpNumber:
		return float64(s.Number()), nil
	case OpDouble:
		return s.Double(), nil
	case OpRange:
		if min > max {
			return 0, newRangeError()
		}
		if min < 0 || max > math.MaxUint32 {
			return 0, ErrBounds{Msg: fmt.Sprintf("range bounds must be within [0, %d]", uint32(math.MaxUint32))}
		}
		v, err := s.Range(uint32(min), uint32(max))
		return float64(v), err
	case OpDoubleRange:
		return s.DoubleRange(min, max)
	case OpRoll:
		return float64(s.Roll()), nil
	case OpToss:
		return float64(s.Toss()), nil
	case OpLogNormal:
		if max < 0 {
			return 0, ErrBounds{Msg: fmt.Sprintf("lognormal standard deviation must not be negative, got %v", max)}
		}
		return NewLogNormalRNG(min, max, s.g).Rand(), nil
	case OpPoisson:
		if min <= 0 || min > MaxPoissonLambda {
			return 0, ErrBounds{Msg: fmt.Sprintf("poisson lambda must be within (0, %d], got %v", MaxPoissonLambda, min)}
		}
		return NewPoissonRNG(min, s.g).Rand(), nil
	default:
		return 0, ErrUnknownOp{Msg: fmt.Sprintf("unknown operation: %s", op)}
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
