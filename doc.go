package parseq

// Package parseq is a small parser-combinator engine: an algebra of
// composable parsing units that consume a prefix of an input view and either
// produce a typed value or fail with the position to resume backtracking
// from.
//
// Design policy:
// - Keep the whole public surface in the root package; a parsing unit is the
//   single-method Parser[V] interface and everything else is a constructor
//   returning one.
// - Failure is control flow, not diagnostics: a failed Result carries only
//   the resume Input. Composites always fail back to their own entry input,
//   so Or can retry alternatives without observing partial consumption.
// - Input is an immutable value-type view; consuming returns a new view and
//   old views stay valid, which makes backtracking free and concurrent
//   application of one parser to different inputs safe by construction.
// - Grammars built on top of the engine are ordinary consumers (see the
//   jsonvalue package); the core knows nothing about them.
//
// Entry points
//   - NewInput(s): wrap a source string into an Input view.
//   - Literal/OneOf/NoneOf/TakeWhile/Whitespace: primitive matchers.
//   - Map/And/Or/Many/Opt/Discard/Wrapped/SepBy/Value/ParseIf/SkipUntil:
//     combinator constructors.
//   - Apply(p, in) / ParseString(p, s): apply a unit; ParseString demands
//     full consumption and reports *ParseError otherwise.
//
// Typical usage:
//
//	digits := parseq.TakeWhile(unicode.IsDigit)
//	number := parseq.Map(digits, func(s string) int { n, _ := strconv.Atoi(s); return n })
//	list := parseq.SepBy[int, string](number, parseq.Literal(","))
//	vals, err := parseq.ParseString[[]int](list, "1,2,3")
