package parseq

import "unicode/utf8"

// Many applies p repeatedly to successive remainders, collecting the values
// in order until the first failure; the failure's resume input is discarded
// and the last successful remainder becomes the final one. Many always
// succeeds, with an empty sequence when p fails immediately.
//
// A round that succeeds without consuming input ends the repetition without
// collecting that round's value. Without this guard a zero-consuming
// sub-parser such as TakeWhile would loop forever.
func Many[V any](p Parser[V]) ParserFunc[[]V] {
	return func(in Input) Result[[]V] {
		var vals []V
		cur := in
		for {
			r := p.Parse(cur)
			if !r.OK || r.Rest.Offset() == cur.Offset() {
				break
			}
			vals = append(vals, r.Value)
			cur = r.Rest
		}
		return Success(cur, vals)
	}
}

// SepBy parses zero or more items separated by sep, with no trailing
// separator consumed. It always succeeds. When a separator matches but the
// following item does not, the separator is rolled back entirely: the final
// remainder is the position before that separator attempt.
//
// The zero-progress guard applies per separator+item round, for the same
// termination reason as in Many.
func SepBy[V, S any](item Parser[V], sep Parser[S]) ParserFunc[[]V] {
	return func(in Input) Result[[]V] {
		var vals []V
		first := item.Parse(in)
		if !first.OK {
			return Success(in, vals)
		}
		vals = append(vals, first.Value)
		cur := first.Rest
		for {
			rs := sep.Parse(cur)
			if !rs.OK {
				break
			}
			ri := item.Parse(rs.Rest)
			if !ri.OK || ri.Rest.Offset() == cur.Offset() {
				break
			}
			vals = append(vals, ri.Value)
			cur = ri.Rest
		}
		return Success(cur, vals)
	}
}

// SkipUntil advances the input one rune at a time until p succeeds, and
// returns p's outcome from that point. It fails — with the entry input —
// when the end of input is reached without p ever matching.
func SkipUntil[V any](p Parser[V]) ParserFunc[V] {
	return func(in Input) Result[V] {
		cur := in
		for {
			if r := p.Parse(cur); r.OK {
				return r
			}
			if cur.Empty() {
				return Failure[V](in)
			}
			r, _ := cur.First()
			cur = cur.Advance(utf8.RuneLen(r))
		}
	}
}
