package parseq_test

import (
	"testing"
	"unicode"

	parseq "github.com/reoring/parseq"
)

func TestOpt(t *testing.T) {
	p := parseq.Opt[string](parseq.Literal("-"))
	r := p.Parse(parseq.NewInput("-1"))
	if !r.OK || !r.Value.OK || r.Value.Value != "-" || r.Rest.Rest() != "1" {
		t.Fatalf("Opt present: %+v rest=%q", r.Value, r.Rest.Rest())
	}

	// Opt never fails; on sub-failure it consumes nothing.
	r = p.Parse(parseq.NewInput("1"))
	if !r.OK || r.Value.OK || r.Rest.Rest() != "1" {
		t.Fatalf("Opt absent: OK=%v present=%v rest=%q", r.OK, r.Value.OK, r.Rest.Rest())
	}

	r = p.Parse(parseq.NewInput(""))
	if !r.OK || r.Value.OK {
		t.Fatalf("Opt on empty input: OK=%v present=%v", r.OK, r.Value.OK)
	}
}

func TestParseIf(t *testing.T) {
	digits := parseq.TakeWhile(unicode.IsDigit)
	frac := parseq.ParseIf[string, string](parseq.Literal("."), digits)

	r := frac.Parse(parseq.NewInput(".45x"))
	if !r.OK || !r.Value.OK || r.Value.Value != "45" || r.Rest.Rest() != "x" {
		t.Fatalf("ParseIf taken: %+v rest=%q", r.Value, r.Rest.Rest())
	}

	// No leading dot: absent, no consumption.
	r = frac.Parse(parseq.NewInput("x"))
	if !r.OK || r.Value.OK || r.Rest.Rest() != "x" {
		t.Fatalf("ParseIf skipped: OK=%v present=%v rest=%q", r.OK, r.Value.OK, r.Rest.Rest())
	}
}

// The guard only suppresses the condition's failure: when the condition
// matches and the body fails, the whole unit fails.
func TestParseIf_BodyFailurePropagates(t *testing.T) {
	p := parseq.ParseIf[string, string](parseq.Literal("."), parseq.Literal("45"))
	r := p.Parse(parseq.NewInput(".xx"))
	if r.OK || r.Rest.Rest() != ".xx" {
		t.Fatalf("ParseIf body failure: OK=%v rest=%q", r.OK, r.Rest.Rest())
	}
}
