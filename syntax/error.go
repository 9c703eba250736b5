package syntax

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in a ParseError) by Parse.
// Callers branch on these with errors.Is rather than matching messages.
var (
	// ErrInvalidPattern indicates the pattern is structurally malformed:
	// a missing terminator, an empty element, or an unknown leading
	// character.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnmatchedBracket indicates a class or repeat bracket without its
	// counterpart, or trailing characters where a bracket was expected.
	ErrUnmatchedBracket = errors.New("brackets do not match")

	// ErrInvalidAmino indicates a character outside the amino acid
	// alphabet where an amino acid code was required.
	ErrInvalidAmino = errors.New("invalid amino acid")

	// ErrEmptyClass indicates a class with no acceptable options.
	ErrEmptyClass = errors.New("no valid options provided")

	// ErrInvalidRepeat indicates a repeat specification that is not one
	// or two non-negative integers with min <= max.
	ErrInvalidRepeat = errors.New("invalid repeat")

	// ErrInvalidAnchor indicates a start anchor on a non-first element or
	// an end anchor on an element with a successor.
	ErrInvalidAnchor = errors.New("invalid anchor placement")

	// ErrAmbiguousTerminus indicates a class that carries both the
	// optional end-of-sequence alternative and a hard end anchor.
	ErrAmbiguousTerminus = errors.New("ambiguous terminus")

	// ErrTooComplex indicates the pattern exceeds a configured size limit.
	ErrTooComplex = errors.New("pattern too complex")
)

// ParseError wraps pattern compilation failures with the pattern text and,
// where applicable, the offending element token.
type ParseError struct {
	Pattern string
	Element string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("motif: cannot parse %q: element %q: %v", e.Pattern, e.Element, e.Err)
	}
	return fmt.Sprintf("motif: cannot parse %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
