// Package syntax compiles motif pattern strings into element chains.
//
// A pattern describes a conserved amino acid motif in a protein sequence.
// The input string must end in a period and contains elements separated by
// dashes:
//   - an IUPAC one-letter amino acid code when only that amino acid is
//     acceptable in the position (e.g. A)
//   - a lowercase x when any amino acid is acceptable in the position
//   - one-letter codes in square brackets when any of them is acceptable
//     (e.g. [MA] matches M and A)
//   - one-letter codes in curly brackets when none of them is acceptable
//     (e.g. {M} matches anything but M)
//   - < prefixed to the first element to anchor it to the start of the
//     sequence (N-terminus)
//   - > suffixed to the last element to anchor it to the end of the
//     sequence (C-terminus)
//   - > inside square brackets to accept either one of the listed amino
//     acids or the end of the sequence (e.g. [KR>])
//
// Repeats may be given for any element in parentheses, either as a single
// count or an inclusive range, e.g. K-I-T(2)-Y(1,3).
//
// Parsing builds a singly linked chain of elements tail-first (right to
// left), so each element is constructed with its already-built successor.
// The resulting chain is immutable and safe to share between concurrent
// searches.
package syntax

import "math/bits"

// Alphabet contains the 20 standard IUPAC amino acid one-letter codes,
// in ascending order.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// aminoTable marks which byte values are valid amino acid codes.
var aminoTable = func() (t [256]bool) {
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = true
	}
	return t
}()

// IsAmino reports whether c is one of the 20 standard amino acid codes.
func IsAmino(c byte) bool {
	return aminoTable[c]
}

// AminoSet is a set of amino acid codes, stored as a bitmask over 'A'..'Z'.
// The zero value is the empty set.
type AminoSet uint32

// With returns a copy of the set with c added.
// c must be an uppercase letter.
func (s AminoSet) With(c byte) AminoSet {
	return s | 1<<(c-'A')
}

// Contains reports whether c is in the set.
func (s AminoSet) Contains(c byte) bool {
	if c < 'A' || c > 'Z' {
		return false
	}
	return s&(1<<(c-'A')) != 0
}

// Len returns the number of amino acids in the set.
func (s AminoSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Chars returns the members of the set in ascending order.
func (s AminoSet) Chars() []byte {
	chars := make([]byte, 0, s.Len())
	for c := byte('A'); c <= 'Z'; c++ {
		if s.Contains(c) {
			chars = append(chars, c)
		}
	}
	return chars
}

// String returns the members of the set in ascending order, e.g. "ACY".
func (s AminoSet) String() string {
	return string(s.Chars())
}
