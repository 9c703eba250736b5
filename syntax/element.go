package syntax

import "fmt"

// Kind identifies which matching rule an Element applies at its position.
// The set of kinds is closed; dispatch happens through a single predicate
// in the engine rather than through subclassing.
type Kind uint8

const (
	// KindLiteral matches exactly one specific amino acid.
	KindLiteral Kind = iota

	// KindWildcard matches any single character.
	KindWildcard

	// KindClass matches one character from a set (or, negated, one
	// character outside the set).
	KindClass
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindWildcard:
		return "Wildcard"
	case KindClass:
		return "Class"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Element is one position (or repeated run of positions) in a compiled
// pattern chain. Elements are linked through Next, head to tail; the tail
// has Next == nil. The chain is built tail-first during parsing and never
// mutated afterwards.
//
// Invariants enforced by the parser:
//   - Nterm is only set on the first element of a chain
//   - Cterm is only set on an element with no successor
//   - AllowEnd is only set on a non-negated class, and never together
//     with Cterm on the same element
//   - a class has at least one option unless AllowEnd is set
type Element struct {
	// Kind selects the matching rule for this element.
	Kind Kind

	// Amino is the accepted amino acid for KindLiteral.
	Amino byte

	// Options is the accepted (or, with Negate, rejected) set for KindClass.
	Options AminoSet

	// Negate inverts Options: the element matches characters outside the set.
	Negate bool

	// AllowEnd marks a class that alternatively matches being positioned
	// exactly at the end of the sequence, consuming nothing.
	AllowEnd bool

	// MinRepeats and MaxRepeats bound how many consecutive positions this
	// element consumes. Both default to 1; MaxRepeats >= MinRepeats >= 0.
	MinRepeats int
	MaxRepeats int

	// Nterm anchors the element to the start of the sequence.
	Nterm bool

	// Cterm anchors the element to the end of the sequence.
	Cterm bool

	// Next is the successor element, nil for the tail.
	Next *Element
}

// Len returns the number of elements in the chain starting at e.
func (e *Element) Len() int {
	n := 0
	for ; e != nil; e = e.Next {
		n++
	}
	return n
}

// MinWidth returns the minimum number of sequence positions the chain
// starting at e can consume in a complete match.
func (e *Element) MinWidth() int {
	w := 0
	for ; e != nil; e = e.Next {
		w += e.MinRepeats
	}
	return w
}

// MaxWidth returns the maximum number of sequence positions the chain
// starting at e can consume in a complete match.
func (e *Element) MaxWidth() int {
	w := 0
	for ; e != nil; e = e.Next {
		w += e.MaxRepeats
	}
	return w
}

// String returns a debug representation of this element alone, without
// its successors.
func (e *Element) String() string {
	var body string
	switch e.Kind {
	case KindLiteral:
		body = fmt.Sprintf("Literal(%c)", e.Amino)
	case KindWildcard:
		body = "Wildcard"
	case KindClass:
		opts := e.Options.String()
		if e.AllowEnd {
			opts += ">"
		}
		if e.Negate {
			body = fmt.Sprintf("NegatedClass(%s)", opts)
		} else {
			body = fmt.Sprintf("Class(%s)", opts)
		}
	default:
		body = e.Kind.String()
	}
	return fmt.Sprintf("%s(%d,%d)", body, e.MinRepeats, e.MaxRepeats)
}
