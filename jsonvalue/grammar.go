package jsonvalue

import (
	"strconv"
	"strings"

	parseq "github.com/reoring/parseq"
)

// The grammar below is ordinary consumer code: named functions are parsing
// units (via parseq.ParserFunc), which is also what ties the recursive
// productions (value -> array -> value) together.

// lexeme runs p and swallows trailing whitespace.
func lexeme[V any](p parseq.Parser[V]) parseq.ParserFunc[V] {
	return parseq.Map(
		parseq.And[V, string](p, parseq.Whitespace()),
		func(pr parseq.Pair[V, string]) V { return pr.First },
	)
}

// document is a full JSON text: one value with surrounding whitespace.
func document(in parseq.Input) parseq.Result[Value] {
	return lexeme[Value](parseq.ParserFunc[Value](jsonValue)).Parse(in)
}

// jsonValue skips leading whitespace, then tries each value form in order.
func jsonValue(in parseq.Input) parseq.Result[Value] {
	return parseq.Discard[string, Value](
		parseq.Whitespace(),
		parseq.Or[Value](
			parseq.ParserFunc[Value](nullValue),
			parseq.ParserFunc[Value](boolValue),
			parseq.ParserFunc[Value](arrayValue),
			parseq.ParserFunc[Value](objectValue),
			parseq.ParserFunc[Value](stringValue),
			parseq.ParserFunc[Value](numberValue),
		),
	).Parse(in)
}

func nullValue(in parseq.Input) parseq.Result[Value] {
	return parseq.Value(Null(), parseq.Literal("null")).Parse(in)
}

func boolValue(in parseq.Input) parseq.Result[Value] {
	return parseq.Map(
		parseq.Or[string](parseq.Literal("true"), parseq.Literal("false")),
		func(s string) Value { return Bool(s == "true") },
	).Parse(in)
}

func stringValue(in parseq.Input) parseq.Result[Value] {
	return parseq.Map(parseq.ParserFunc[string](stringLiteral), String).Parse(in)
}

// stringLiteral parses a quoted JSON string into its decoded text. Shared
// between string values and object keys.
func stringLiteral(in parseq.Input) parseq.Result[string] {
	plain := parseq.Map(parseq.NoneOf("\"\\"), func(r rune) string { return string(r) })
	body := parseq.Map(
		parseq.Many[string](parseq.Or[string](plain, parseq.ParserFunc[string](escaped))),
		func(parts []string) string { return strings.Join(parts, "") },
	)
	return parseq.Wrapped[string, string, string](parseq.Literal(`"`), body, parseq.Literal(`"`)).Parse(in)
}

func escaped(in parseq.Input) parseq.Result[string] {
	return parseq.Or[string](
		parseq.Value("\\", parseq.Literal(`\\`)),
		parseq.Value(`"`, parseq.Literal(`\"`)),
		parseq.Value("\n", parseq.Literal(`\n`)),
		parseq.Value("\t", parseq.Literal(`\t`)),
		parseq.Value("\r", parseq.Literal(`\r`)),
		parseq.Value("/", parseq.Literal(`\/`)),
		parseq.Value("\f", parseq.Literal(`\f`)),
		parseq.Value("\b", parseq.Literal(`\b`)),
		parseq.ParserFunc[string](unicodeEscape),
	).Parse(in)
}

var hexDigit = parseq.OneOf("0123456789abcdefABCDEF")

// hex4 consumes exactly four hex digits. Hex digits are ASCII, so the
// consumed text is the four bytes at the entry offset.
func hex4(in parseq.Input) parseq.Result[string] {
	rest := in
	for i := 0; i < 4; i++ {
		r := hexDigit.Parse(rest)
		if !r.OK {
			return parseq.Failure[string](in)
		}
		rest = r.Rest
	}
	return parseq.Success(rest, in.Rest()[:4])
}

// unicodeEscape handles \uXXXX for code points in the Basic Multilingual
// Plane. Surrogate pairs are not recombined.
func unicodeEscape(in parseq.Input) parseq.Result[string] {
	return parseq.Map(
		parseq.Discard[string, string](parseq.Literal(`\u`), parseq.ParserFunc[string](hex4)),
		func(hex string) string {
			n, _ := strconv.ParseUint(hex, 16, 32)
			return string(rune(n))
		},
	).Parse(in)
}

func arrayValue(in parseq.Input) parseq.Result[Value] {
	elems := parseq.Wrapped[string, []Value, string](
		parseq.Whitespace(),
		parseq.SepBy[Value, string](lexeme[Value](parseq.ParserFunc[Value](jsonValue)), parseq.Literal(",")),
		parseq.Whitespace(),
	)
	return parseq.Map(
		parseq.Wrapped[string, []Value, string](parseq.Literal("["), elems, parseq.Literal("]")),
		func(vs []Value) Value { return Value{Kind: KindArray, Array: vs} },
	).Parse(in)
}

func objectValue(in parseq.Input) parseq.Result[Value] {
	members := parseq.SepBy[parseq.Pair[string, Value], string](
		parseq.ParserFunc[parseq.Pair[string, Value]](member),
		parseq.Literal(","),
	)
	return parseq.Map(
		parseq.Wrapped[string, []parseq.Pair[string, Value], string](
			parseq.Literal("{"),
			members,
			parseq.Discard[string, string](parseq.Whitespace(), parseq.Literal("}")),
		),
		func(pairs []parseq.Pair[string, Value]) Value {
			obj := make(map[string]Value, len(pairs))
			for _, p := range pairs {
				obj[p.First] = p.Second
			}
			return Value{Kind: KindObject, Object: obj}
		},
	).Parse(in)
}

// member parses `"key": value`, swallowing the whitespace around the key,
// the colon, and the value.
func member(in parseq.Input) parseq.Result[parseq.Pair[string, Value]] {
	key := parseq.Discard[string, string](parseq.Whitespace(), parseq.ParserFunc[string](stringLiteral))
	colon := parseq.Wrapped[string, string, string](parseq.Whitespace(), parseq.Literal(":"), parseq.Whitespace())
	val := parseq.Discard[string, Value](colon, parseq.ParserFunc[Value](jsonValue))
	return lexeme[parseq.Pair[string, Value]](parseq.And[string, Value](key, val)).Parse(in)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// digits1 is TakeWhile(isDigit) with an at-least-one check composed on top.
func digits1(in parseq.Input) parseq.Result[string] {
	r := parseq.TakeWhile(isDigit).Parse(in)
	if r.Value == "" {
		return parseq.Failure[string](in)
	}
	return r
}

// numberValue composes sign, integral, fraction and exponent into the
// matched numeric literal and delegates the conversion to strconv, so parsed
// numbers agree bit-for-bit with encoding-library decoders.
func numberValue(in parseq.Input) parseq.Result[Value] {
	sign := parseq.Map(parseq.Opt[string](parseq.Literal("-")), orEmpty)
	integral := parseq.Or[string](parseq.Literal("0"), parseq.ParserFunc[string](digits1))
	frac := parseq.Map(
		parseq.ParseIf[string, string](parseq.Literal("."), parseq.ParserFunc[string](digits1)),
		func(m parseq.Maybe[string]) string {
			if !m.OK {
				return ""
			}
			return "." + m.Value
		},
	)
	expTail := parseq.And[parseq.Maybe[string], string](
		parseq.Opt[string](parseq.Or[string](parseq.Literal("-"), parseq.Literal("+"))),
		parseq.ParserFunc[string](digits1),
	)
	exp := parseq.Map(
		parseq.Opt[parseq.Pair[parseq.Maybe[string], string]](
			parseq.Discard[rune, parseq.Pair[parseq.Maybe[string], string]](parseq.OneOf("eE"), expTail),
		),
		func(m parseq.Maybe[parseq.Pair[parseq.Maybe[string], string]]) string {
			if !m.OK {
				return ""
			}
			return "e" + orEmpty(m.Value.First) + m.Value.Second
		},
	)
	lit := parseq.Map(
		parseq.And[parseq.Pair[parseq.Pair[string, string], string], string](
			parseq.And[parseq.Pair[string, string], string](parseq.And[string, string](sign, integral), frac),
			exp,
		),
		func(p parseq.Pair[parseq.Pair[parseq.Pair[string, string], string], string]) string {
			return p.First.First.First + p.First.First.Second + p.First.Second + p.Second
		},
	)

	r := lit.Parse(in)
	if !r.OK {
		return parseq.Failure[Value](in)
	}
	f, err := strconv.ParseFloat(r.Value, 64)
	if err != nil {
		return parseq.Failure[Value](in)
	}
	return parseq.Success(r.Rest, Number(f))
}

func orEmpty(m parseq.Maybe[string]) string {
	if !m.OK {
		return ""
	}
	return m.Value
}
