package rng

// RangeError is returned by Range and DoubleRange when the requested minimum
// exceeds the requested maximum.  It is raised before any state is touched.
type RangeError struct {
	Msg string
}

func (e RangeError) Error() string {
	return e.Msg
}

func newRangeError() RangeError {
	return RangeError{Msg: "min cannot be bigger than max"}
}

// ErrBounds is returned by Draw when its bounds or distribution parameters
// cannot be used, such as NaN or infinite values
type ErrBounds struct {
	Msg string
}

func (e ErrBounds) Error() string {
	return e.Msg
}

// ErrUnknownAlgorithm is returned when selecting a generator by an unrecognized name
type ErrUnknownAlgorithm struct {
	Msg string
}

func (e ErrUnknownAlgorithm) Error() string {
	return e.Msg
}

// ErrUnknownOp is returned when dispatching a sampling operation by an unrecognized name
type ErrUnknownOp struct {
	Msg string
}

func (e ErrUnknownOp) Error() string {
	return e.Msg
}
