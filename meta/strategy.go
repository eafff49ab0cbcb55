package meta

import (
	"bytes"

	"github.com/coregx/linegrep/literal"
	"github.com/coregx/linegrep/prefilter"
)

// Strategy represents the execution strategy for matching.
//
// Strategy selection is automatic based on the extracted literal prefixes.
type Strategy int

const (
	// UseScan runs the matcher at every position.
	// Selected for:
	//   - Patterns without required literal prefixes (\d+, ^abc, a*b)
	//   - Prefixes shorter than MinLiteralLen
	//   - When EnablePrefilter is false in config
	UseScan Strategy = iota

	// UsePrefilter runs the matcher only at literal candidates, until the
	// prefilter proves ineffective for the input.
	// Selected for:
	//   - Patterns whose every match starts with one of a few literals
	//     (hello\d+, (cat|dog)s?)
	UsePrefilter

	// UseLiteral finds matches with the prefilter alone.
	// Selected for:
	//   - Patterns that are plain literals or alternations of them
	//     (hello, cat|dog|bird)
	//   - When no literal is a prefix of another, so the leftmost
	//     occurrence is unambiguous
	UseLiteral
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseScan:
		return "UseScan"
	case UsePrefilter:
		return "UsePrefilter"
	case UseLiteral:
		return "UseLiteral"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the strategy for the extracted prefixes and the
// prefilter built from them (nil if none could be built).
func selectStrategy(prefixes *literal.Seq, pf prefilter.Prefilter, config Config) Strategy {
	if !config.EnablePrefilter || pf == nil {
		return UseScan
	}
	if prefixes.MinLen() < config.MinLiteralLen {
		return UseScan
	}
	if config.EnableLiteralEngine && pf.IsComplete() && prefixFree(prefixes) {
		return UseLiteral
	}
	return UsePrefilter
}

// prefixFree reports whether no literal in seq is a prefix of another.
// For such a set every literal search semantics (leftmost-first or
// leftmost-longest) agrees with alternation order.
func prefixFree(seq *literal.Seq) bool {
	for i := 0; i < seq.Len(); i++ {
		for j := 0; j < seq.Len(); j++ {
			if i != j && bytes.HasPrefix(seq.Get(j).Bytes, seq.Get(i).Bytes) {
				return false
			}
		}
	}
	return true
}
