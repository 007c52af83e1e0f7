package parseq_test

import (
	"strings"
	"testing"
	"unicode"

	parseq "github.com/reoring/parseq"
)

func TestMany(t *testing.T) {
	digits := parseq.Many[rune](parseq.OneOf("0123456789"))
	r := digits.Parse(parseq.NewInput("123abc"))
	if !r.OK || string(r.Value) != "123" || r.Rest.Rest() != "abc" {
		t.Fatalf("Many: OK=%v value=%q rest=%q", r.OK, string(r.Value), r.Rest.Rest())
	}
}

// Many on an input where the sub-parser never succeeds is the identity:
// Success with an empty sequence and the original input.
func TestMany_EmptyOnImmediateFailure(t *testing.T) {
	digits := parseq.Many[rune](parseq.OneOf("0123456789"))
	r := digits.Parse(parseq.NewInput("abc"))
	if !r.OK || len(r.Value) != 0 || r.Rest.Rest() != "abc" {
		t.Fatalf("Many identity: OK=%v n=%d rest=%q", r.OK, len(r.Value), r.Rest.Rest())
	}
}

// A sub-parser that succeeds without consuming must not be looped again.
func TestMany_ZeroProgressTerminates(t *testing.T) {
	ws := parseq.Many[string](parseq.Whitespace())
	r := ws.Parse(parseq.NewInput("  done"))
	if !r.OK || r.Rest.Rest() != "done" {
		t.Fatalf("Many over zero-consuming unit: OK=%v rest=%q", r.OK, r.Rest.Rest())
	}
	// One whitespace run was collected; the zero-progress round was not.
	if len(r.Value) != 1 || r.Value[0] != "  " {
		t.Fatalf("collected %q", r.Value)
	}

	r = ws.Parse(parseq.NewInput("done"))
	if !r.OK || len(r.Value) != 0 || r.Rest.Rest() != "done" {
		t.Fatalf("Many immediate zero-progress: OK=%v n=%d rest=%q", r.OK, len(r.Value), r.Rest.Rest())
	}
}

func TestSepBy(t *testing.T) {
	word := parseq.TakeWhile(unicode.IsLetter)
	item := parseq.ParserFunc[string](func(in parseq.Input) parseq.Result[string] {
		r := word.Parse(in)
		if r.OK && r.Value == "" {
			return parseq.Failure[string](in)
		}
		return r
	})
	list := parseq.SepBy[string, string](item, parseq.Literal(","))

	items := []string{"alpha", "beta", "gamma"}
	r := list.Parse(parseq.NewInput(strings.Join(items, ",")))
	if !r.OK || !r.Rest.Empty() {
		t.Fatalf("SepBy: OK=%v rest=%q", r.OK, r.Rest.Rest())
	}
	if strings.Join(r.Value, ",") != strings.Join(items, ",") {
		t.Fatalf("SepBy round-trip mismatch: %q", r.Value)
	}
}

func TestSepBy_Empty(t *testing.T) {
	list := parseq.SepBy[rune, string](parseq.OneOf("0123456789"), parseq.Literal(","))
	r := list.Parse(parseq.NewInput("x"))
	if !r.OK || len(r.Value) != 0 || r.Rest.Rest() != "x" {
		t.Fatalf("SepBy empty: OK=%v n=%d rest=%q", r.OK, len(r.Value), r.Rest.Rest())
	}
}

// A trailing separator is never consumed: when the item after a separator
// fails, the remainder is the position before that separator attempt.
func TestSepBy_TrailingSeparatorRolledBack(t *testing.T) {
	list := parseq.SepBy[rune, string](parseq.OneOf("0123456789"), parseq.Literal(","))
	r := list.Parse(parseq.NewInput("1,2,"))
	if !r.OK || string(r.Value) != "12" || r.Rest.Rest() != "," {
		t.Fatalf("SepBy trailing sep: OK=%v value=%q rest=%q", r.OK, string(r.Value), r.Rest.Rest())
	}
}

func TestSepBy_ZeroProgressTerminates(t *testing.T) {
	// Item and separator both succeed with zero consumption; the round guard
	// must end the repetition after the first item.
	list := parseq.SepBy[string, string](parseq.Whitespace(), parseq.Literal(""))
	r := list.Parse(parseq.NewInput("x"))
	if !r.OK || r.Rest.Rest() != "x" {
		t.Fatalf("SepBy zero-progress: OK=%v rest=%q", r.OK, r.Rest.Rest())
	}
}

func TestSkipUntil(t *testing.T) {
	p := parseq.SkipUntil[string](parseq.Literal("x"))
	r := p.Parse(parseq.NewInput("aax.."))
	if !r.OK || r.Value != "x" || r.Rest.Rest() != ".." {
		t.Fatalf("SkipUntil: OK=%v value=%q rest=%q", r.OK, r.Value, r.Rest.Rest())
	}

	r = p.Parse(parseq.NewInput("aaa"))
	if r.OK || r.Rest.Rest() != "aaa" {
		t.Fatalf("SkipUntil without a match must resume at entry, got rest=%q", r.Rest.Rest())
	}
}
