package parseq

import "fmt"

// ParseError is the boundary error reported by ParseString. The engine's
// Result model carries no messages — failure is a backtracking signal, not a
// diagnostic — so the only structural information available at the boundary
// is the byte offset of the input the failed parse would resume from, and
// whether the parse actually succeeded but left input unconsumed.
type ParseError struct {
	// Offset is the byte position in the original source at which the parse
	// stopped: the resume point of the failure, or the start of the
	// unconsumed remainder.
	Offset int
	// Unconsumed is true when the parse itself succeeded but did not account
	// for the entire input.
	Unconsumed bool
}

func (e *ParseError) Error() string {
	if e.Unconsumed {
		return fmt.Sprintf("parseq: unconsumed input at offset %d", e.Offset)
	}
	return fmt.Sprintf("parseq: parse failed at offset %d", e.Offset)
}
