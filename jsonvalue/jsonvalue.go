// Package jsonvalue is a JSON value grammar built entirely on top of the
// parseq combinator engine. It exists as the engine's demonstration
// consumer: every production is an ordinary parsing unit composed from the
// public primitives and combinators, and the engine knows nothing about it.
//
// Parse decodes a complete JSON document into a Value tree; EncodeJSON
// projects a Value back to JSON bytes via goccy/go-json.
package jsonvalue

import (
	json "github.com/goccy/go-json"

	parseq "github.com/reoring/parseq"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a decoded JSON value. Exactly one variant field is meaningful,
// selected by Kind.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Str    string
	Array  []Value
	Object map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{Kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Number wraps a number.
func Number(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// String wraps a string.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Interface projects the Value tree into the generic representation used by
// encoding packages: nil, bool, float64, string, []any, map[string]any.
func (v Value) Interface() any {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Number
	case KindString:
		return v.Str
	case KindArray:
		out := make([]any, len(v.Array))
		for i, e := range v.Array {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Object))
		for k, e := range v.Object {
			out[k] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

// EncodeJSON re-encodes the Value as compact JSON.
func (v Value) EncodeJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// Parse decodes a complete JSON document. Leading and trailing whitespace is
// accepted; any other unconsumed input is an error. The returned error, when
// non-nil, is a *parseq.ParseError.
func Parse(s string) (Value, error) {
	return parseq.ParseString[Value](parseq.ParserFunc[Value](document), s)
}
