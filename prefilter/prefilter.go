// Package prefilter provides fast candidate filtering for motif search
// using extracted prefix literals.
//
// A prefilter quickly rejects sequence offsets that cannot start a match,
// so the backtracking engine only runs where one of the pattern's required
// prefix strings actually occurs. Strategy selection is based on the
// extracted literal sequence:
//   - single literal → substring search (bytes.Index)
//   - multiple literals → Aho-Corasick automaton
//   - no usable literals → no prefilter (engine scans every offset)
//
// A prefilter is an optimization only: unless IsComplete reports that a
// literal occurrence already is a full match, every candidate must be
// verified by the engine.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/motif/literal"
)

// Prefilter finds candidate match start positions in a sequence.
type Prefilter interface {
	// Find returns the smallest candidate offset at or after start, or -1
	// if no candidate exists. A candidate is a position where one of the
	// pattern's required prefix strings occurs.
	Find(seq []byte, start int) int

	// IsComplete reports whether a candidate is already a full match, in
	// which case the caller may skip engine verification.
	IsComplete() bool

	// LiteralLen returns the length of the matched prefix string. All
	// literals backing one prefilter share a single length.
	LiteralLen() int
}

// FromLiterals builds the best prefilter for the extracted literal
// sequence, or nil when the sequence is empty.
func FromLiterals(seq *literal.Seq) Prefilter {
	switch {
	case seq.IsEmpty():
		return nil
	case seq.Len() == 1:
		return newSubstring(seq.Get(0))
	default:
		return newMultiLiteral(seq)
	}
}

// substring is a single-literal prefilter backed by bytes.Index.
type substring struct {
	needle   []byte
	complete bool
}

func newSubstring(lit literal.Literal) Prefilter {
	needle := make([]byte, len(lit.Bytes))
	copy(needle, lit.Bytes)
	return &substring{needle: needle, complete: lit.Complete}
}

// Find implements Prefilter.
func (p *substring) Find(seq []byte, start int) int {
	if start < 0 || start >= len(seq) {
		return -1
	}
	idx := bytes.Index(seq[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.
func (p *substring) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.
func (p *substring) LiteralLen() int {
	return len(p.needle)
}

// multiLiteral is a multi-pattern prefilter backed by an Aho-Corasick
// automaton over the alternative prefix strings.
type multiLiteral struct {
	auto     *ahocorasick.Automaton
	complete bool
	litLen   int
}

// newMultiLiteral builds the automaton from the literal sequence. If the
// automaton cannot be built, filtering is disabled: a prefilter must
// never skip a valid candidate, and any one literal out of several would.
func newMultiLiteral(seq *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &multiLiteral{
		auto:     auto,
		complete: seq.IsComplete(),
		litLen:   seq.LiteralLen(),
	}
}

// Find implements Prefilter.
func (p *multiLiteral) Find(seq []byte, start int) int {
	if start < 0 || start >= len(seq) {
		return -1
	}
	m := p.auto.Find(seq, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.
func (p *multiLiteral) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.
func (p *multiLiteral) LiteralLen() int {
	return p.litLen
}
