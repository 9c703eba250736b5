package engine

import "fmt"

// Match is the outcome of matching one element (and, recursively, its
// successors) at a given offset: either no match, or a match consuming
// Extent sequence positions in total.
//
// Reading the extent of a failed match is a programming error and panics;
// a no-match is a normal result and must never be confused with a
// zero-width match.
type Match struct {
	hit    bool
	extent int
}

// NoMatch returns the failed Match.
func NoMatch() Match {
	return Match{}
}

// NewMatch returns a successful Match consuming extent positions.
// extent must be non-negative.
func NewMatch(extent int) Match {
	if extent < 0 {
		panic(fmt.Sprintf("engine: negative match extent %d", extent))
	}
	return Match{hit: true, extent: extent}
}

// Hit reports whether the match succeeded.
func (m Match) Hit() bool {
	return m.hit
}

// Extent returns the number of sequence positions consumed.
// It panics if the match failed.
func (m Match) Extent() int {
	if !m.hit {
		panic("engine: cannot access extent without a match")
	}
	return m.extent
}

// String returns a debug representation of the match.
func (m Match) String() string {
	if !m.hit {
		return "Match(false)"
	}
	return fmt.Sprintf("Match(true, %d)", m.extent)
}

// Location is a half-open span [Start, End) into a searched sequence,
// identifying one complete occurrence of a pattern. Pure value type.
type Location struct {
	Start int
	End   int
}

// Len returns the number of sequence positions the span covers.
func (l Location) Len() int {
	return l.End - l.Start
}

// String returns a debug representation of the span.
func (l Location) String() string {
	return fmt.Sprintf("Match from %d to %d (length: %d)", l.Start, l.End, l.Len())
}
