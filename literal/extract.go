package literal

import "github.com/coregx/motif/syntax"

// Config bounds prefix extraction so class cross-products cannot explode.
type Config struct {
	// MaxLiterals caps the number of alternative prefixes. Extraction
	// stops (keeping the shorter prefixes) before exceeding it.
	// Default: 32.
	MaxLiterals int

	// MaxClassOptions caps the size of a class that may be expanded into
	// alternatives. Larger classes end extraction. Default: 4.
	MaxClassOptions int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:     32,
		MaxClassOptions: 4,
	}
}

// ExtractPrefixes walks the chain from head and returns the set of
// strings every match must start with, or an empty Seq when the chain
// has no usable fixed prefix.
//
// Extraction consumes elements while they are mandatory and fixed-width:
// literals and small non-negated classes with an exact repeat count of at
// least one. Wildcards, negated classes, optional-end classes, ranged or
// optional repeats, and anchored elements end extraction, as does
// exceeding the configured limits. If the whole chain is consumed the
// literals are marked complete.
func ExtractPrefixes(head *syntax.Element, config Config) *Seq {
	if config.MaxLiterals == 0 {
		config.MaxLiterals = DefaultConfig().MaxLiterals
	}
	if config.MaxClassOptions == 0 {
		config.MaxClassOptions = DefaultConfig().MaxClassOptions
	}

	prefixes := [][]byte{nil}
	e := head
	for ; e != nil; e = e.Next {
		if !fixedWidth(e) {
			break
		}
		expanded, ok := expand(prefixes, e, config)
		if !ok {
			break
		}
		prefixes = expanded
	}
	if len(prefixes) == 1 && len(prefixes[0]) == 0 {
		return NewSeq()
	}

	complete := e == nil
	lits := make([]Literal, len(prefixes))
	for i, p := range prefixes {
		lits[i] = NewLiteral(p, complete)
	}
	return NewSeq(lits...)
}

// fixedWidth reports whether e consumes an exact, non-zero number of
// positions with a concrete set of acceptable characters and no anchor.
func fixedWidth(e *syntax.Element) bool {
	if e.Nterm || e.Cterm {
		return false
	}
	if e.MinRepeats != e.MaxRepeats || e.MinRepeats < 1 {
		return false
	}
	switch e.Kind {
	case syntax.KindLiteral:
		return true
	case syntax.KindClass:
		return !e.Negate && !e.AllowEnd
	}
	return false
}

// expand appends element e's repeat run to every prefix, multiplying the
// set by the class options where needed. Reports false when the result
// would exceed the configured limits.
func expand(prefixes [][]byte, e *syntax.Element, config Config) ([][]byte, bool) {
	if e.Kind == syntax.KindLiteral {
		for i, p := range prefixes {
			prefixes[i] = appendRun(p, e.Amino, e.MinRepeats)
		}
		return prefixes, true
	}

	options := e.Options.Chars()
	if len(options) > config.MaxClassOptions {
		return nil, false
	}
	count := len(prefixes)
	for i := 0; i < e.MinRepeats; i++ {
		count *= len(options)
		if count > config.MaxLiterals {
			return nil, false
		}
	}

	for i := 0; i < e.MinRepeats; i++ {
		next := make([][]byte, 0, len(prefixes)*len(options))
		for _, p := range prefixes {
			for _, c := range options {
				branch := make([]byte, len(p), len(p)+1)
				copy(branch, p)
				next = append(next, append(branch, c))
			}
		}
		prefixes = next
	}
	return prefixes, true
}

// appendRun appends n copies of c to p, copying so branches never share
// backing arrays.
func appendRun(p []byte, c byte, n int) []byte {
	run := make([]byte, len(p), len(p)+n)
	copy(run, p)
	for i := 0; i < n; i++ {
		run = append(run, c)
	}
	return run
}
