// Package motif provides a compile-once, search-many pattern engine for
// protein motifs.
//
// A pattern is a compact DSL string describing a conserved amino acid
// motif: literals, wildcards, character classes, negated classes, bounded
// repeats, and sequence-terminus anchors. It is compiled once into an
// immutable chain of match elements and then searched against any number
// of sequences.
//
// Basic usage:
//
//	// Compile a pattern
//	p, err := motif.Compile("K-I-T(2)-Y.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find the first occurrence
//	offset := p.FindString("HEYKITTYKITTY")
//	fmt.Println(offset) // 3
//
//	// Enumerate every matching span
//	for _, loc := range p.FindAllString("HEYKITTYKITTY") {
//	    fmt.Println(loc.Start, loc.End)
//	}
//
// Matching is greedy with backtracking: at every element the largest
// permitted repeat count is tried first, falling back to smaller counts
// when the rest of the chain cannot complete. FindAll enumerates every
// valid span, not just the greedy one, and does not deduplicate
// overlapping or nested spans.
//
// A compiled Pattern is immutable and safe for concurrent use from any
// number of goroutines.
//
// Pattern syntax is described in the syntax package; out-of-alphabet
// characters in searched sequences are not rejected, they simply fail
// literal and class comparisons.
package motif

import (
	"github.com/coregx/motif/engine"
	"github.com/coregx/motif/literal"
	"github.com/coregx/motif/prefilter"
	"github.com/coregx/motif/syntax"
)

// Location is a half-open span [Start, End) identifying one complete
// occurrence of a pattern in a searched sequence.
type Location = engine.Location

// Pattern is a compiled motif pattern. It is immutable after compilation:
// one Pattern may serve concurrent searches over many sequences without
// coordination.
type Pattern struct {
	pattern string
	head    *syntax.Element
	bt      *engine.Backtracker
	pf      prefilter.Prefilter

	// maxWidth bounds how many positions a complete match can consume;
	// with an end-anchored tail it prunes the candidate scan from below.
	maxWidth int

	// anchoredStart caps the candidate scan at startLimit offsets when
	// the head element is anchored to the sequence start.
	anchoredStart bool
	startLimit    int

	// anchoredEnd marks an end-anchored tail element.
	anchoredEnd bool
}

// Compile compiles a motif pattern with the default configuration.
//
// Returns a *syntax.ParseError describing the reason (unmatched brackets,
// invalid amino acid, invalid repeat, invalid anchor placement, ambiguous
// terminus) if the pattern is malformed. Compilation is all-or-nothing:
// there is no partially compiled Pattern.
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a motif pattern and panics if it fails.
// Useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("motif: Compile(" + pattern + "): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a motif pattern with custom limits.
func CompileWithConfig(pattern string, config Config) (*Pattern, error) {
	config = config.withDefaults()

	head, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	if head.Len() > config.MaxElements {
		return nil, &syntax.ParseError{Pattern: pattern, Err: syntax.ErrTooComplex}
	}

	p := &Pattern{
		pattern:  pattern,
		head:     head,
		bt:       engine.New(head),
		maxWidth: head.MaxWidth(),
	}
	// An anchored element with a zero-minimum repeat can be skipped
	// outright, in which case its anchor never constrains the match, so
	// the scan may only be pruned when the anchored run is mandatory.
	if head.Nterm && head.MinRepeats > 0 {
		p.anchoredStart = true
		p.startLimit = head.MaxRepeats
	}
	for e := head; e != nil; e = e.Next {
		if e.Cterm && e.MinRepeats > 0 {
			p.anchoredEnd = true
		}
	}

	// A start anchor already bounds the scan to a handful of offsets, so
	// a prefilter would only add work there.
	if !config.DisablePrefilter && !p.anchoredStart {
		lits := literal.ExtractPrefixes(head, literal.Config{
			MaxLiterals:     config.MaxPrefixLiterals,
			MaxClassOptions: config.MaxClassOptions,
		})
		p.pf = prefilter.FromLiterals(lits)
	}
	return p, nil
}

// String returns the source pattern text.
func (p *Pattern) String() string {
	return p.pattern
}

// Find returns the offset of the first occurrence of the pattern in seq,
// or -1 if there is none. Candidate offsets are scanned left to right.
func (p *Pattern) Find(seq []byte) int {
	return p.find(seq, 0)
}

// FindString is Find for a string sequence.
func (p *Pattern) FindString(seq string) int {
	return p.Find([]byte(seq))
}

// FindFrom returns the offset of the first occurrence of the pattern at
// or after anchor, or -1 if there is none. A negative anchor counts back
// from the end of the sequence (-1 is the last position); anchors outside
// the sequence yield -1.
func (p *Pattern) FindFrom(seq []byte, anchor int) int {
	if anchor < 0 {
		anchor += len(seq)
	}
	if anchor < 0 || anchor >= len(seq) {
		return -1
	}
	return p.find(seq, anchor)
}

// FindFromString is FindFrom for a string sequence.
func (p *Pattern) FindFromString(seq string, anchor int) int {
	return p.FindFrom([]byte(seq), anchor)
}

// FindAll returns every span at which the pattern matches seq, in scan
// order: ascending start offset and, per offset, discovery order of the
// repeat enumeration. Overlapping and nested spans are all reported; an
// empty sequence yields no spans.
func (p *Pattern) FindAll(seq []byte) []Location {
	lo, hi := p.scanBounds(len(seq))
	var results []Location
	for offset := lo; offset < hi; offset++ {
		if p.pf != nil {
			next := p.pf.Find(seq, offset)
			if next < 0 || next >= hi {
				break
			}
			offset = next
			if p.pf.IsComplete() {
				results = append(results, Location{Start: offset, End: offset + p.pf.LiteralLen()})
				continue
			}
		}
		results = append(results, p.bt.AllMatchesAt(seq, offset)...)
	}
	return results
}

// FindAllString is FindAll for a string sequence.
func (p *Pattern) FindAllString(seq string) []Location {
	return p.FindAll([]byte(seq))
}

// find scans candidate offsets in [from, hi) and returns the first where
// the whole chain matches.
func (p *Pattern) find(seq []byte, from int) int {
	lo, hi := p.scanBounds(len(seq))
	if from > lo {
		lo = from
	}
	for offset := lo; offset < hi; offset++ {
		if p.pf != nil {
			next := p.pf.Find(seq, offset)
			if next < 0 || next >= hi {
				return -1
			}
			offset = next
			if p.pf.IsComplete() {
				return offset
			}
		}
		if p.bt.MatchAt(seq, offset).Hit() {
			return offset
		}
	}
	return -1
}

// scanBounds returns the half-open range of candidate start offsets for a
// sequence of length n. A start-anchored head caps the range from above
// by its repeat budget; an end-anchored tail prunes from below, since no
// match can consume more than the chain's maximum width.
func (p *Pattern) scanBounds(n int) (lo, hi int) {
	lo, hi = 0, n
	if p.anchoredStart && p.startLimit < hi {
		hi = p.startLimit
	}
	if p.anchoredEnd {
		if m := n - p.maxWidth; m > lo {
			lo = m
		}
	}
	return lo, hi
}
