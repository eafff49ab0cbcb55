package syntax

import (
	"errors"
	"fmt"
)

// Compile errors. Every error returned by Compile wraps exactly one of these,
// so callers can classify failures with errors.Is.
var (
	// ErrUnhandledEscape indicates a backslash followed by a character that
	// is neither a class escape nor a metacharacter.
	ErrUnhandledEscape = errors.New("unhandled escape pattern")

	// ErrUnfinishedEscape indicates a trailing backslash.
	ErrUnfinishedEscape = errors.New("unfinished escape pattern")

	// ErrUnclosedSet indicates a [ without a matching ].
	ErrUnclosedSet = errors.New("unclosed `[`")

	// ErrUnopenedSet indicates a ] outside of a set.
	ErrUnopenedSet = errors.New("unopened `[`")

	// ErrUnclosedGroup indicates a ( without a matching ).
	ErrUnclosedGroup = errors.New("unclosed `(`")

	// ErrUnopenedGroup indicates a ) without a matching (.
	ErrUnopenedGroup = errors.New("unopened `)`")

	// ErrMissingRepeatArgument indicates +, * or ? with nothing to repeat.
	ErrMissingRepeatArgument = errors.New("missing argument to repetition operator")

	// ErrNestingDepth indicates groups nested beyond ParserOptions.MaxDepth.
	ErrNestingDepth = errors.New("expression nests too deeply")
)

// Error describes a pattern that failed to compile.
type Error struct {
	// Pattern is the full pattern text.
	Pattern string

	// Pos is the character index in Pattern where the problem was detected.
	Pos int

	// Err is one of the package's Err* values.
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%v at position %d in pattern %q", e.Err, e.Pos, e.Pattern)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}
