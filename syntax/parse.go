package syntax

import (
	"strconv"
	"strings"
)

// Parse compiles a pattern string into an element chain and returns its
// head. The chain is built right to left so each element receives its
// already-built successor; anchor placement is validated as the chain
// grows. All failures are permanent: there is no partially compiled chain.
func Parse(pattern string) (*Element, error) {
	if !strings.HasSuffix(pattern, ".") {
		return nil, &ParseError{Pattern: pattern, Err: ErrInvalidPattern}
	}
	parts := strings.Split(strings.TrimSuffix(pattern, "."), "-")

	var next *Element
	for i := len(parts) - 1; i >= 0; i-- {
		elem, err := parseElement(parts[i], next)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Pattern = pattern
			}
			return nil, err
		}
		next = elem
	}
	return next, nil
}

// parseElement parses a single dash-separated token into an Element linked
// to its successor. Steps, in order: strip and record terminus markers,
// dispatch on the leading character, parse the repeat suffix, validate the
// class body.
func parseElement(token string, next *Element) (*Element, error) {
	fail := func(err error) (*Element, error) {
		return nil, &ParseError{Element: token, Err: err}
	}

	nterm, body, cterm := parseTerminus(token)
	if body == "" {
		return fail(ErrInvalidPattern)
	}
	// A start anchor is only valid on the first element, so no successor
	// may carry one; an end anchor is only valid on the last.
	if next != nil && next.Nterm {
		return fail(ErrInvalidAnchor)
	}
	if cterm && next != nil {
		return fail(ErrInvalidAnchor)
	}

	elem := &Element{Nterm: nterm, Cterm: cterm, Next: next}
	var err error
	switch {
	case IsAmino(body[0]):
		elem.Kind = KindLiteral
		elem.Amino = body[0]
		elem.MinRepeats, elem.MaxRepeats, err = parseRepeats(body, 1)
	case body[0] == 'x':
		elem.Kind = KindWildcard
		elem.MinRepeats, elem.MaxRepeats, err = parseRepeats(body, 1)
	case body[0] == '[':
		elem.Kind = KindClass
		elem.Options, elem.AllowEnd, elem.MinRepeats, elem.MaxRepeats, err = parseOptions(body, '[', ']')
		if err == nil && elem.AllowEnd && cterm {
			err = ErrAmbiguousTerminus
		}
	case body[0] == '{':
		elem.Kind = KindClass
		elem.Negate = true
		// Negated classes reject the optional end-of-sequence marker:
		// "anything but these, or the end" has no use in the motif corpus
		// and the strict grammar keeps > out of curly brackets.
		elem.Options, _, elem.MinRepeats, elem.MaxRepeats, err = parseOptions(body, '{', '}')
	default:
		err = ErrInvalidPattern
	}
	if err != nil {
		return fail(err)
	}
	return elem, nil
}

// parseTerminus strips a leading < and a trailing > marker from the token
// and reports which were present.
func parseTerminus(token string) (nterm bool, body string, cterm bool) {
	body = token
	if strings.HasPrefix(body, "<") {
		nterm = true
		body = body[1:]
	}
	if strings.HasSuffix(body, ">") {
		cterm = true
		body = body[:len(body)-1]
	}
	return nterm, body, cterm
}

// parseRepeats parses the (n) or (n,m) repeat suffix expected to start at
// offset in the token. An absent suffix means exactly one repeat.
func parseRepeats(token string, offset int) (minRepeats, maxRepeats int, err error) {
	if offset >= len(token) {
		return 1, 1, nil
	}
	if token[offset] != '(' || !strings.HasSuffix(token, ")") {
		return 0, 0, ErrUnmatchedBracket
	}
	fields := strings.Split(token[offset+1:len(token)-1], ",")
	if len(fields) > 2 {
		return 0, 0, ErrInvalidRepeat
	}
	counts := make([]int, len(fields))
	for i, field := range fields {
		counts[i], err = strconv.Atoi(field)
		if err != nil || counts[i] < 0 {
			return 0, 0, ErrInvalidRepeat
		}
	}
	minRepeats = counts[0]
	maxRepeats = counts[len(counts)-1]
	if maxRepeats < minRepeats {
		return 0, 0, ErrInvalidRepeat
	}
	return minRepeats, maxRepeats, nil
}

// parseOptions parses a bracketed class body such as [ACT], {M} or [KR>],
// including any repeat suffix after the closing bracket. The > marker is
// only recognised inside square brackets.
func parseOptions(token string, open, close byte) (options AminoSet, allowEnd bool, minRepeats, maxRepeats int, err error) {
	if token[0] != open {
		return 0, false, 0, 0, ErrUnmatchedBracket
	}
	idx := 1
	for idx < len(token) && token[idx] != close {
		c := token[idx]
		switch {
		case IsAmino(c):
			options = options.With(c)
		case c == '>' && open == '[' && !allowEnd:
			allowEnd = true
		case c == ']' || c == '}':
			// The wrong closing bracket for this class.
			return 0, false, 0, 0, ErrUnmatchedBracket
		default:
			return 0, false, 0, 0, ErrInvalidAmino
		}
		idx++
	}
	if idx == len(token) {
		return 0, false, 0, 0, ErrUnmatchedBracket
	}
	minRepeats, maxRepeats, err = parseRepeats(token, idx+1)
	if err != nil {
		return 0, false, 0, 0, err
	}
	if options == 0 && !allowEnd {
		return 0, false, 0, 0, ErrEmptyClass
	}
	return options, allowEnd, minRepeats, maxRepeats, nil
}
