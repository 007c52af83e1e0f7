package parseq

// Maybe is the optional value produced by Opt and ParseIf. OK reports
// whether a value is present.
type Maybe[V any] struct {
	Value V
	OK    bool
}

// Opt tries p and never fails: on success the value is wrapped as present
// with p's remainder; on failure the attempt is fully backtracked and Opt
// succeeds with an absent value and the original input.
func Opt[V any](p Parser[V]) ParserFunc[Maybe[V]] {
	return func(in Input) Result[Maybe[V]] {
		r := p.Parse(in)
		if !r.OK {
			return Success(in, Maybe[V]{})
		}
		return Success(r.Rest, Maybe[V]{Value: r.Value, OK: true})
	}
}

// ParseIf guards then behind cond. When cond fails, ParseIf succeeds with an
// absent value and zero consumption. When cond succeeds, then is applied to
// the remainder and its value wrapped as present — and then's failure is a
// failure of the whole unit, not absence: only cond's failure is suppressed.
func ParseIf[C, V any](cond Parser[C], then Parser[V]) ParserFunc[Maybe[V]] {
	return func(in Input) Result[Maybe[V]] {
		rc := cond.Parse(in)
		if !rc.OK {
			return Success(in, Maybe[V]{})
		}
		rt := then.Parse(rc.Rest)
		if !rt.OK {
			return Failure[Maybe[V]](in)
		}
		return Success(rt.Rest, Maybe[V]{Value: rt.Value, OK: true})
	}
}
