package parseq

// Parser is the parsing capability: the single operation every primitive and
// combinator exposes. A Parser consumes a prefix of the given Input and
// either succeeds with a typed value and the remaining view, or fails with
// the view to resume backtracking from. Parsers are first-class values —
// constructed once by composition, applied arbitrarily often — and must be
// pure with respect to their Input: no hidden state, deterministic on equal
// views. Primitives and combinators are indistinguishable behind this
// interface; it is the sole extension point.
type Parser[V any] interface {
	Parse(in Input) Result[V]
}

// ParserFunc adapts a plain function into a Parser, so closures and named
// grammar functions can be used as parsing units directly.
type ParserFunc[V any] func(in Input) Result[V]

// Parse calls f(in).
func (f ParserFunc[V]) Parse(in Input) Result[V] { return f(in) }

// Apply applies a parsing unit to an input view. It exists for symmetry at
// call sites that hold the parser and input as values.
func Apply[V any](p Parser[V], in Input) Result[V] { return p.Parse(in) }

// ParseString applies p to the whole of s. It returns a *ParseError when the
// parse fails, and also when the parse succeeds without consuming the entire
// input — a top-level grammar is expected to account for every byte.
func ParseString[V any](p Parser[V], s string) (V, error) {
	r := p.Parse(NewInput(s))
	if !r.OK {
		var zero V
		return zero, &ParseError{Offset: r.Rest.Offset()}
	}
	if !r.Rest.Empty() {
		return r.Value, &ParseError{Offset: r.Rest.Offset(), Unconsumed: true}
	}
	return r.Value, nil
}
