// Package literal extracts required prefix strings from compiled element
// chains.
//
// A pattern whose chain begins with fixed-width mandatory elements must
// start every match with one of a small set of concrete strings. Those
// strings feed the prefilter layer: search can jump between occurrences
// of the strings instead of verifying the full chain at every offset.
//
// Key concepts:
//   - a Literal is one concrete byte string matches may start with
//   - a Seq is the set of alternative literals (classes multiply it)
//   - a Seq is Complete when its literals cover the entire chain, so an
//     occurrence of a literal is already a full match
package literal

// Literal represents one required prefix string extracted from a chain.
// Complete indicates that the literal covers the whole chain rather than
// just a leading portion of it.
type Literal struct {
	// Bytes contains the prefix string.
	Bytes []byte

	// Complete indicates that matching this literal is sufficient:
	// no chain verification is needed at the found position.
	Complete bool
}

// NewLiteral creates a Literal from the given bytes and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debug representation of the literal.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative prefix literals extracted from one chain.
// All literals in a Seq have the same length, because extraction advances
// element by element and every branch consumes the same repeat count.
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// IsComplete reports whether every literal in the sequence covers the
// whole chain. An empty sequence is not complete.
func (s *Seq) IsComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// LiteralLen returns the shared length of the literals in the sequence,
// or 0 if the sequence is empty.
func (s *Seq) LiteralLen() int {
	if s.IsEmpty() {
		return 0
	}
	return len(s.literals[0].Bytes)
}
