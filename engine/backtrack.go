// Package engine evaluates compiled element chains against amino acid
// sequences.
//
// The engine is a stateless recursive backtracker over an immutable chain
// and a read-only sequence buffer: repeat counts are tried greedily from
// the maximum down to the minimum, falling back to shorter counts whenever
// the rest of the chain cannot complete. All search state lives on the
// call stack; recursion depth equals chain length. A Backtracker is safe
// to use concurrently from any number of goroutines.
//
// Two evaluation modes exist over the same descent:
//   - MatchAt reports the first (longest-prefix) successful repeat
//     assignment, answering "does a match start here"
//   - AllMatchesAt enumerates a span for every distinct total consumption,
//     which ranged repeats make necessary for exhaustive site counting
package engine

import "github.com/coregx/motif/syntax"

// Backtracker evaluates a compiled element chain at single offsets of a
// sequence. It holds no per-search state.
type Backtracker struct {
	head *syntax.Element
}

// New creates a Backtracker for the chain starting at head.
func New(head *syntax.Element) *Backtracker {
	return &Backtracker{head: head}
}

// MatchAt matches the whole chain at the given offset, greedily. The
// returned extent is the total number of positions consumed by the chain.
func (b *Backtracker) MatchAt(seq []byte, offset int) Match {
	return matchChain(b.head, seq, offset)
}

// AllMatchesAt enumerates every span of a complete chain match starting
// at the given offset. Start is always offset; the ends vary with the
// repeat assignment. The result is in discovery order: longer repeat
// counts of earlier elements first.
func (b *Backtracker) AllMatchesAt(seq []byte, offset int) []Location {
	return allMatches(b.head, seq, offset)
}

// matchesAt tests only this element's own rule at the given offset,
// independent of repeats and successors.
//
// An out-of-bounds offset fails, with one exception: a class carrying the
// end-of-sequence alternative matches zero-width exactly at the end.
// A start-anchored element only matches within reach of the true start
// given its repeat budget; an end-anchored element only within reach of
// the true end.
func matchesAt(e *syntax.Element, seq []byte, offset int) bool {
	if offset < 0 || offset >= len(seq) {
		return e.Kind == syntax.KindClass && e.AllowEnd && offset >= 0 && offset <= len(seq)
	}
	if e.Nterm && offset >= e.MaxRepeats {
		return false
	}
	if e.Cterm && offset < len(seq)-e.MaxRepeats {
		return false
	}
	switch e.Kind {
	case syntax.KindLiteral:
		return seq[offset] == e.Amino
	case syntax.KindWildcard:
		return true
	case syntax.KindClass:
		if e.Negate {
			return !e.Options.Contains(seq[offset])
		}
		return e.Options.Contains(seq[offset])
	}
	return false
}

// repeatRun reports whether element e matches at every one of the r
// positions starting at offset. A run of zero repeats trivially holds.
func repeatRun(e *syntax.Element, seq []byte, offset, r int) bool {
	for idx := offset; idx < offset+r; idx++ {
		if !matchesAt(e, seq, idx) {
			return false
		}
	}
	return true
}

// matchChain matches element e and all its successors at offset. Repeat
// counts run from MaxRepeats down to MinRepeats: greedy, with fallback to
// the next smaller count whenever the successors fail.
func matchChain(e *syntax.Element, seq []byte, offset int) Match {
	for r := e.MaxRepeats; r >= e.MinRepeats; r-- {
		if r > 0 {
			if len(seq)-offset < r-1 {
				// Fewer characters remain than the run needs.
				continue
			}
			if !repeatRun(e, seq, offset, r) {
				continue
			}
		}
		if e.Next == nil {
			return NewMatch(r)
		}
		if next := matchChain(e.Next, seq, offset+r); next.Hit() {
			return NewMatch(r + next.Extent())
		}
	}
	return NoMatch()
}

// allMatches enumerates the spans of every complete match of element e
// and its successors at offset, one per distinct total consumption. Tail
// elements only contribute spans that stay within the sequence: a run
// completed through the end-of-sequence alternative would duplicate the
// coordinates of the shorter in-bounds run.
func allMatches(e *syntax.Element, seq []byte, offset int) []Location {
	var results []Location
	for r := e.MaxRepeats; r >= e.MinRepeats; r-- {
		if r > 0 {
			if len(seq)-offset < r-1 {
				continue
			}
			if !repeatRun(e, seq, offset, r) {
				continue
			}
		}
		if e.Next != nil {
			for _, loc := range allMatches(e.Next, seq, offset+r) {
				results = append(results, Location{Start: offset, End: loc.End})
			}
		} else if offset+r <= len(seq) {
			results = append(results, Location{Start: offset, End: offset + r})
		}
	}
	return results
}
