package parseq

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Literal returns a parsing unit that consumes exactly text as a prefix of
// the input, producing the matched text. It fails — returning the original
// input — when the prefix does not match, including when the remaining input
// is shorter than text.
func Literal(text string) ParserFunc[string] {
	return func(in Input) Result[string] {
		rest, ok := in.StripPrefix(text)
		if !ok {
			return Failure[string](in)
		}
		return Success(rest, text)
	}
}

// OneOf returns a parsing unit that consumes a single rune when it is one of
// chars, producing that rune. It fails on empty input and on any rune not in
// the set.
func OneOf(chars string) ParserFunc[rune] {
	return func(in Input) Result[rune] {
		r, ok := in.First()
		if !ok || !strings.ContainsRune(chars, r) {
			return Failure[rune](in)
		}
		return Success(in.Advance(utf8.RuneLen(r)), r)
	}
}

// NoneOf is the complement of OneOf: it consumes a single rune when it is
// NOT one of chars. It still fails on empty input.
func NoneOf(chars string) ParserFunc[rune] {
	return func(in Input) Result[rune] {
		r, ok := in.First()
		if !ok || strings.ContainsRune(chars, r) {
			return Failure[rune](in)
		}
		return Success(in.Advance(utf8.RuneLen(r)), r)
	}
}

// TakeWhile returns a parsing unit that consumes the maximal prefix whose
// runes all satisfy pred. It always succeeds, producing the (possibly empty)
// consumed text; callers that require at least one rune must compose an
// emptiness check on the produced value.
func TakeWhile(pred func(rune) bool) ParserFunc[string] {
	return func(in Input) Result[string] {
		text, rest := in.SpanWhile(pred)
		return Success(rest, text)
	}
}

// Whitespace consumes any run of Unicode whitespace, including none. It is
// typically used with Discard or Wrapped for inter-token skipping.
func Whitespace() ParserFunc[string] {
	return TakeWhile(unicode.IsSpace)
}
