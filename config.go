package motif

// Config bounds compilation. The zero value of any field selects its
// default, so Config{} behaves like DefaultConfig().
type Config struct {
	// MaxElements caps the number of elements in a pattern chain.
	// Matching cost grows with the repeat branching factor raised to the
	// chain depth, so the cap keeps pathological patterns out of the
	// engine. Default: 64.
	MaxElements int

	// DisablePrefilter turns off literal prefiltering; every candidate
	// offset is then verified by the backtracking engine. Results are
	// identical either way.
	DisablePrefilter bool

	// MaxPrefixLiterals caps the number of alternative prefix strings
	// extracted for the prefilter. Default: 32.
	MaxPrefixLiterals int

	// MaxClassOptions caps the size of a character class the prefix
	// extractor may expand into alternatives. Default: 4.
	MaxClassOptions int
}

// DefaultConfig returns the default compilation limits.
func DefaultConfig() Config {
	return Config{
		MaxElements:       64,
		MaxPrefixLiterals: 32,
		MaxClassOptions:   4,
	}
}

// withDefaults fills zero-valued fields with their defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxElements == 0 {
		c.MaxElements = def.MaxElements
	}
	if c.MaxPrefixLiterals == 0 {
		c.MaxPrefixLiterals = def.MaxPrefixLiterals
	}
	if c.MaxClassOptions == 0 {
		c.MaxClassOptions = def.MaxClassOptions
	}
	return c
}
