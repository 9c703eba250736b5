package motif

import (
	"errors"
	"reflect"
	"testing"

	"github.com/coregx/motif/syntax"
)

// TestCompile tests basic compilation.
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"single literal", "A.", false},
		{"wildcard", "x.", false},
		{"class", "[MA].", false},
		{"negated class", "{M}.", false},
		{"repeats", "K-I-T(2)-Y(1,3).", false},
		{"anchors", "<M-A-T>.", false},
		{"optional end", "A-[T>](1,2).", false},
		{"missing terminator", "A", true},
		{"unknown character", "*.", true},
		{"double literal", "AA.", true},
		{"unmatched bracket", "[AC.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if p == nil {
					t.Fatal("Compile() returned nil")
				}
				if p.String() != tt.pattern {
					t.Errorf("String() = %q, want %q", p.String(), tt.pattern)
				}
			}
		})
	}
}

// TestCompileErrorKinds checks that callers can branch on the sentinel
// error kinds through the facade.
func TestCompileErrorKinds(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"B.", syntax.ErrInvalidPattern},
		{"[AC.", syntax.ErrUnmatchedBracket},
		{"[AB].", syntax.ErrInvalidAmino},
		{"[].", syntax.ErrEmptyClass},
		{"A(x).", syntax.ErrInvalidRepeat},
		{"A-<M.", syntax.ErrInvalidAnchor},
		{"A-[AT>]>.", syntax.ErrAmbiguousTerminus},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
		})
	}
}

// TestCompileTooComplex checks the element count guard.
func TestCompileTooComplex(t *testing.T) {
	if _, err := CompileWithConfig("A-C-D-E.", Config{MaxElements: 3}); !errors.Is(err, syntax.ErrTooComplex) {
		t.Errorf("error = %v, want %v", err, syntax.ErrTooComplex)
	}
	if _, err := CompileWithConfig("A-C-D.", Config{MaxElements: 3}); err != nil {
		t.Errorf("error = %v, want nil at the limit", err)
	}
}

// TestMustCompile tests panic on an invalid pattern.
func TestMustCompile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()
	MustCompile("AA.")
}

func TestFind(t *testing.T) {
	const sequence = "MAGICHAT"

	tests := []struct {
		pattern string
		seq     string
		want    int
	}{
		{"Y.", sequence, -1},
		{"A.", sequence, 1},
		{"A-G.", sequence, 1},
		{"A-Y.", sequence, -1},
		{"A-T.", sequence, 6},
		{"A-T.", "", -1},

		// wildcards
		{"x.", sequence, 0},
		{"M-x.", "M", -1},
		{"M-x.", "", -1},
		{"M-x.", "AM", -1},
		{"M-x.", sequence, 0},
		{"x-A.", "A", -1},
		{"x-A.", "", -1},
		{"x-A.", "AC", -1},
		{"x-A.", sequence, 0},
		{"x-A-x.", sequence, 0},
		{"x-A-x.", "A", -1},

		// classes
		{"[A].", sequence, 1},
		{"[A].", "M", -1},
		{"[A].", "", -1},
		{"[AC].", sequence, 1},
		{"[AC].", "CAT", 0},
		{"[AC].", "KITTY", -1},

		// negated classes
		{"{A}.", sequence, 0},
		{"{A}.", "A", -1},
		{"{A}.", "", -1},
		{"{MAGIC}.", sequence, 5},
		{"{MAGIC}.", "MAGIC", -1},
		{"{MAGIC}.", "GAMMA", -1},

		// repeats
		{"M-x-x-x-C.", sequence, 0},
		{"M-x(3)-C.", sequence, 0},
		{"[AT](2).", sequence, 6},
		{"[AT](2).", "A", -1},
		{"{A}(3).", "BB", -1},
		{"H-A-T-S(0,1).", sequence, 5},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.seq, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			if got := p.FindString(tt.seq); got != tt.want {
				t.Errorf("FindString(%q) = %d, want %d", tt.seq, got, tt.want)
			}
		})
	}
}

// TestFindRange checks greedy-with-backtrack repeat ranges: the engine
// tries the largest count first but a shorter count reached by the
// descending iteration can win at an earlier offset.
func TestFindRange(t *testing.T) {
	const sequence = "MYKITTYYYY"

	tests := []struct {
		pattern string
		want    int
	}{
		{"Y(1,2).", 1},
		{"Y(2,4).", 6},
		{"T(2,3)-Y.", 4},
		{"[TY](2,3).", 4},
		{"{MY}(2,3).", 2},
		{"x(2,3).", 0},
		{"T-Y(0,1).", 4},
		{"K-Y(0,1)-I.", 2},
		{"K-x(0,1)-I.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			if got := p.FindString(sequence); got != tt.want {
				t.Errorf("FindString(%q) = %d, want %d", sequence, got, tt.want)
			}
		})
	}
}

// TestFindAnchored checks hard terminus anchors.
func TestFindAnchored(t *testing.T) {
	tests := []struct {
		pattern string
		seq     string
		want    int
	}{
		{"<M.", "MAGICHAT", 0},
		{"<M.", "AMAGIC", -1},
		{"<M.", "", -1},
		{"T>.", "MAGICHAT", 7},
		{"T>.", "TABLE", -1},
		{"T>.", "TAT", 2},
		{"<M-A-G.", "MAGICHAT", 0},
		{"A-T>.", "MAGICHAT", 6},
		{"A-T>.", "MATHS", -1},
		{"<M>.", "M", 0},
		{"<M>.", "MM", -1},

		// A zero-minimum anchored run can be skipped entirely, voiding
		// its anchor: matches must still be found away from the terminus.
		{"A-T(0,1)>.", "AXXXX", 0},
		{"A-T(0,1)>.", "CAT", 1},
		{"<A(0,1)-C.", "MC", 1},
		{"<A(0,1)-C.", "AC", 0},
		{"<A(0,1)-C.", "XXC", 2},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.seq, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			if got := p.FindString(tt.seq); got != tt.want {
				t.Errorf("FindString(%q) = %d, want %d", tt.seq, got, tt.want)
			}
		})
	}
}

// TestFindFrom checks anchored search from a given offset, including
// negative anchors counting from the end.
func TestFindFrom(t *testing.T) {
	const sequence = "MAGICHAT"

	yp := MustCompile("Y.")
	if got := yp.FindFromString(sequence, 0); got != -1 {
		t.Errorf("FindFromString(0) = %d, want -1", got)
	}

	p := MustCompile("A.")
	tests := []struct {
		anchor int
		want   int
	}{
		{0, 1},
		{2, 6},
		{7, -1},
		{12, -1},  // past the end
		{-3, 6},   // three from the end
		{-1, -1},  // last position only
		{-12, -1}, // before the start
	}
	for _, tt := range tests {
		if got := p.FindFromString(sequence, tt.anchor); got != tt.want {
			t.Errorf("FindFromString(%d) = %d, want %d", tt.anchor, got, tt.want)
		}
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		pattern string
		seq     string
		want    []Location
	}{
		{"Y.", "HEYKITTYKITTY", []Location{{Start: 2, End: 3}, {Start: 7, End: 8}, {Start: 12, End: 13}}},
		{"K-I-T(2)-Y.", "HEYKITTYKITTY", []Location{{Start: 3, End: 8}, {Start: 8, End: 13}}},
		{"x-A-T.", "CATINTHEHAT", []Location{{Start: 0, End: 3}, {Start: 8, End: 11}}},
		{"[CH]-A-T.", "CATINTHEHAT", []Location{{Start: 0, End: 3}, {Start: 8, End: 11}}},
		{"{M}-A-T.", "CATINTHEHAT", []Location{{Start: 0, End: 3}, {Start: 8, End: 11}}},
		{"E(1,4)-Y.", "HEEEEY", []Location{{Start: 1, End: 6}, {Start: 2, End: 6}, {Start: 3, End: 6}, {Start: 4, End: 6}}},
		{"A-[T>](1,2).", "MAGICHAT", []Location{{Start: 6, End: 8}}},
		{"<A(0,1)-C.", "MC", []Location{{Start: 1, End: 2}}},
		{"A-T(0,1)>.", "CAT", []Location{{Start: 1, End: 3}, {Start: 1, End: 2}}},
		{"Y.", "", nil},
		{"Y.", "MAGIC", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.seq, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			got := p.FindAllString(tt.seq)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindAllString(%q) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

// TestFindAllOverlapping checks that overlapping and nested spans are all
// reported, without deduplication, in scan order: ascending start, then
// discovery order (descending repeat counts).
func TestFindAllOverlapping(t *testing.T) {
	p := MustCompile("Y(1,2).")
	got := p.FindAllString("MYYK")
	want := []Location{{Start: 1, End: 3}, {Start: 1, End: 2}, {Start: 2, End: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllString() = %v, want %v", got, want)
	}
}

// TestFindAllBounds checks the span invariants on a mix of patterns.
func TestFindAllBounds(t *testing.T) {
	patterns := []string{"A-[T>](1,2).", "x(1,3).", "[AT](1,4).", "Y(1,2).", "{M}(1,2)."}
	seqs := []string{"", "A", "MAGICHAT", "TTTT", "MYYK"}

	for _, pattern := range patterns {
		p := MustCompile(pattern)
		for _, seq := range seqs {
			for _, loc := range p.FindAllString(seq) {
				if loc.Start > loc.End || loc.End > len(seq) {
					t.Errorf("pattern %q seq %q: span %v out of bounds", pattern, seq, loc)
				}
			}
		}
	}
}

// TestRecompileIdempotent checks that recompiling a pattern yields
// behaviorally identical results.
func TestRecompileIdempotent(t *testing.T) {
	patterns := []string{"A.", "K-I-T(2)-Y.", "A-[T>](1,2).", "{MAGIC}.", "<M-x(3)-C."}
	seqs := []string{"", "MAGICHAT", "HEYKITTYKITTY", "CATINTHEHAT"}

	for _, pattern := range patterns {
		first := MustCompile(pattern)
		second := MustCompile(pattern)
		for _, seq := range seqs {
			if a, b := first.FindString(seq), second.FindString(seq); a != b {
				t.Errorf("pattern %q seq %q: Find %d vs %d", pattern, seq, a, b)
			}
			a, b := first.FindAllString(seq), second.FindAllString(seq)
			if !reflect.DeepEqual(a, b) {
				t.Errorf("pattern %q seq %q: FindAll %v vs %v", pattern, seq, a, b)
			}
		}
	}
}

// TestPrefilterEquivalence checks that prefiltered search returns exactly
// the unfiltered results on every pattern shape that builds a prefilter.
func TestPrefilterEquivalence(t *testing.T) {
	patterns := []string{
		"K-I-T(2)-Y.", // complete single literal
		"[CH]-A-T.",   // complete multi literal
		"M-A-x-C.",    // incomplete prefix
		"[AT](2).",    // complete class expansion
		"A-T-Y(1,3).", // incomplete prefix before ranged repeat
	}
	seqs := []string{"", "MAGICHAT", "HEYKITTYKITTY", "CATINTHEHAT", "TTTT", "KITKAT"}

	for _, pattern := range patterns {
		filtered := MustCompile(pattern)
		plain, err := CompileWithConfig(pattern, Config{DisablePrefilter: true})
		if err != nil {
			t.Fatalf("CompileWithConfig(%q) error = %v", pattern, err)
		}
		if filtered.pf == nil {
			t.Errorf("pattern %q built no prefilter", pattern)
		}
		for _, seq := range seqs {
			if a, b := filtered.FindString(seq), plain.FindString(seq); a != b {
				t.Errorf("pattern %q seq %q: filtered Find %d, plain %d", pattern, seq, a, b)
			}
			a, b := filtered.FindAllString(seq), plain.FindAllString(seq)
			if !reflect.DeepEqual(a, b) {
				t.Errorf("pattern %q seq %q: filtered FindAll %v, plain %v", pattern, seq, a, b)
			}
		}
	}
}

// TestFindBytes checks the []byte entry points against the string ones.
func TestFindBytes(t *testing.T) {
	p := MustCompile("A-T.")
	seq := "MAGICHAT"
	if got, want := p.Find([]byte(seq)), p.FindString(seq); got != want {
		t.Errorf("Find = %d, FindString = %d", got, want)
	}
	if a, b := p.FindAll([]byte(seq)), p.FindAllString(seq); !reflect.DeepEqual(a, b) {
		t.Errorf("FindAll = %v, FindAllString = %v", a, b)
	}
	if got, want := p.FindFrom([]byte(seq), -3), p.FindFromString(seq, -3); got != want {
		t.Errorf("FindFrom = %d, FindFromString = %d", got, want)
	}
}

// TestConcurrentUse compiles once and searches from many goroutines; the
// compiled Pattern must be safely shareable with no coordination.
func TestConcurrentUse(t *testing.T) {
	p := MustCompile("K-I-T(2)-Y.")
	const seq = "HEYKITTYKITTY"
	want := p.FindAllString(seq)

	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- true }()
			for j := 0; j < 100; j++ {
				if got := p.FindAllString(seq); !reflect.DeepEqual(got, want) {
					t.Errorf("concurrent FindAllString = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
