package parseq

// Pair is the ordered value produced by And.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map applies p and, on success, transforms the produced value with f.
// Failures pass through unchanged.
func Map[A, B any](p Parser[A], f func(A) B) ParserFunc[B] {
	return func(in Input) Result[B] {
		r := p.Parse(in)
		if !r.OK {
			return Failure[B](r.Rest)
		}
		return Success(r.Rest, f(r.Value))
	}
}

// And sequences p then q, producing both values as a Pair. When either side
// fails, And fails with the input it received as a whole — never an
// intermediate position — so alternation over compound parsers retries from
// a clean state.
func And[A, B any](p Parser[A], q Parser[B]) ParserFunc[Pair[A, B]] {
	return func(in Input) Result[Pair[A, B]] {
		ra := p.Parse(in)
		if !ra.OK {
			return Failure[Pair[A, B]](in)
		}
		rb := q.Parse(ra.Rest)
		if !rb.OK {
			return Failure[Pair[A, B]](in)
		}
		return Success(rb.Rest, Pair[A, B]{First: ra.Value, Second: rb.Value})
	}
}

// Or tries each alternative in order against the same input and returns the
// first success unchanged. There is no longest-match resolution: the first
// alternative to succeed wins. When every alternative fails, Or fails with
// the original input.
func Or[V any](first Parser[V], rest ...Parser[V]) ParserFunc[V] {
	return func(in Input) Result[V] {
		r := first.Parse(in)
		if r.OK {
			return r
		}
		for _, p := range rest {
			if r = p.Parse(in); r.OK {
				return r
			}
		}
		return Failure[V](in)
	}
}

// Discard sequences p then q, keeping only q's value. Either side failing
// fails the whole unit back to its entry input.
func Discard[A, B any](p Parser[A], q Parser[B]) ParserFunc[B] {
	return func(in Input) Result[B] {
		ra := p.Parse(in)
		if !ra.OK {
			return Failure[B](in)
		}
		rb := q.Parse(ra.Rest)
		if !rb.OK {
			return Failure[B](in)
		}
		return rb
	}
}

// Value applies p for effect only and, on success, substitutes v for the
// produced value. Failures propagate.
func Value[V, U any](v V, p Parser[U]) ParserFunc[V] {
	return Map(p, func(U) V { return v })
}

// Wrapped sequences left, body, right and produces body's value, dropping
// the delimiters. Any of the three failing backtracks the whole unit to its
// entry input.
func Wrapped[L, V, R any](left Parser[L], body Parser[V], right Parser[R]) ParserFunc[V] {
	return func(in Input) Result[V] {
		rl := left.Parse(in)
		if !rl.OK {
			return Failure[V](in)
		}
		rb := body.Parse(rl.Rest)
		if !rb.OK {
			return Failure[V](in)
		}
		rr := right.Parse(rb.Rest)
		if !rr.OK {
			return Failure[V](in)
		}
		return Success(rr.Rest, rb.Value)
	}
}
