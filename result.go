package parseq

// Result is the two-variant outcome of applying a parsing unit.
//
// On success (OK true), Rest is the input remaining after consumption and
// Value is the produced value. On failure (OK false), Rest is the input to
// resume backtracking from and Value is the zero value. Composite parsers
// always set a failure's Rest to the input the composite itself received,
// never an intermediate partially-consumed view; that is the invariant that
// lets Or retry alternatives cleanly.
type Result[V any] struct {
	Rest  Input
	Value V
	OK    bool
}

// Success builds a successful Result with the remaining input and the
// produced value.
func Success[V any](rest Input, v V) Result[V] {
	return Result[V]{Rest: rest, Value: v, OK: true}
}

// Failure builds a failed Result carrying the input to resume from.
func Failure[V any](resume Input) Result[V] {
	return Result[V]{Rest: resume}
}
