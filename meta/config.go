// Package meta implements the engine orchestrator that selects how a compiled
// pattern is executed.
//
// The engine coordinates three strategies:
//   - Scan: the state-machine matcher tries every position
//   - Prefilter: the matcher jumps between literal candidates
//   - Literal: the pattern is a set of plain literals, found directly
//
// Strategy selection is based on the literal prefixes every match must start
// with. All strategies report the same spans; they differ only in speed.
package meta

import "github.com/coregx/linegrep/syntax"

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // Always scan every position
//	engine, err := meta.CompileWithConfig(`\d+`, config)
type Config struct {
	// EnablePrefilter enables literal-based candidate skipping.
	// Default: true
	EnablePrefilter bool

	// EnableLiteralEngine lets patterns made only of plain literals bypass
	// the matcher entirely. Ignored when EnablePrefilter is false.
	// Default: true
	EnableLiteralEngine bool

	// MinLiteralLen is the minimum byte length of the shortest prefix for a
	// prefilter to be used. Shorter literals may have too many false
	// positives.
	// Default: 1
	MinLiteralLen int

	// MaxLiterals limits the number of alternative prefixes. Patterns with
	// more alternatives are scanned without a prefilter.
	// Default: 64
	MaxLiterals int

	// MaxNestingDepth limits group nesting during compilation.
	// Default: 1000
	MaxNestingDepth int
}

// DefaultConfig returns a configuration with every optimization enabled.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:     true,
		EnableLiteralEngine: true,
		MinLiteralLen:       1,
		MaxLiterals:         64,
		MaxNestingDepth:     syntax.DefaultMaxDepth,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MinLiteralLen: 1 to 64
//   - MaxLiterals: 1 to 1,000
//   - MaxNestingDepth: 1 to 100,000
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}

	if c.MaxNestingDepth < 1 || c.MaxNestingDepth > 100_000 {
		return &ConfigError{
			Field:   "MaxNestingDepth",
			Message: "must be between 1 and 100,000",
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "linegrep: invalid config: " + e.Field + ": " + e.Message
}
