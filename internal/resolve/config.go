package resolve

import "model-resolver/internal/scalar"

// Config holds configuration for the resolution process.
type Config struct {
	// Scalars maps canonical names to scalar schemas. Nil means the
	// built-in table.
	Scalars *scalar.Mapper
	// MaxDepth bounds the recursion depth of a single walk. Exceeding it
	// means the cycle guard was bypassed.
	MaxDepth int
	// Debug turns a runaway walk into a panic instead of a diagnostic.
	Debug bool
	// Concurrency is the number of root types a Session resolves at once.
	Concurrency int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{
		Scalars:     scalar.Default(),
		MaxDepth:    512,
		Debug:       false,
		Concurrency: 1,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Scalars == nil {
		c.Scalars = def.Scalars
	}

	if c.MaxDepth <= 0 {
		c.MaxDepth = def.MaxDepth
	}

	if c.Concurrency <= 0 {
		c.Concurrency = def.Concurrency
	}

	return c
}
