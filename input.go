package parseq

import (
	"strings"
	"unicode/utf8"
)

// Input is an immutable window over a source string. It is a small value
// type: copying it duplicates the view, never the underlying data. Every
// consuming operation returns a new Input advanced past the consumed prefix;
// the receiver is left untouched, which is what makes backtracking free —
// an older view stays valid after newer views have been derived from it.
type Input struct {
	src string
	off int
}

// NewInput wraps a full source string into an Input view positioned at the
// start.
func NewInput(s string) Input { return Input{src: s} }

// Len reports the number of bytes remaining in the view.
func (in Input) Len() int { return len(in.src) - in.off }

// Empty reports whether the view has been fully consumed.
func (in Input) Empty() bool { return in.off >= len(in.src) }

// Offset reports the byte position of the view within the original source.
func (in Input) Offset() int { return in.off }

// Rest returns the unconsumed remainder of the source.
func (in Input) Rest() string { return in.src[in.off:] }

// First peeks at the first rune of the remainder without consuming it.
// It reports false on an empty view.
func (in Input) First() (rune, bool) {
	if in.Empty() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(in.src[in.off:])
	return r, true
}

// StripPrefix consumes prefix from the front of the view. It reports false
// and returns the receiver unchanged when the remainder does not start with
// prefix.
func (in Input) StripPrefix(prefix string) (Input, bool) {
	if !strings.HasPrefix(in.src[in.off:], prefix) {
		return in, false
	}
	return Input{src: in.src, off: in.off + len(prefix)}, true
}

// SpanWhile consumes the maximal (possibly empty) prefix whose runes all
// satisfy pred, returning the consumed text and the advanced view.
func (in Input) SpanWhile(pred func(rune) bool) (string, Input) {
	rest := in.src[in.off:]
	end := len(rest)
	for i, r := range rest {
		if !pred(r) {
			end = i
			break
		}
	}
	return rest[:end], Input{src: in.src, off: in.off + end}
}

// Advance returns a view moved n bytes forward. n is clamped to the
// remaining length.
func (in Input) Advance(n int) Input {
	if n > in.Len() {
		n = in.Len()
	}
	return Input{src: in.src, off: in.off + n}
}
