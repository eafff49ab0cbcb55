package literal

import (
	"github.com/coregx/linegrep/syntax"
)

// ExtractorConfig configures literal extraction limits.
type ExtractorConfig struct {
	// MaxLiterals limits the number of alternative literals. Patterns whose
	// alternations produce more yield no prefixes at all. Default: 64.
	MaxLiterals int

	// MaxLiteralLen caps each literal, in characters. A literal cut at the
	// cap is marked incomplete. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor extracts literal prefixes from compiled patterns.
//
// A prefix sequence is only reported when it is sound for the matcher's scan:
// an attempt starting at a position where none of the prefixes occurs is
// guaranteed to fail. Anything that could match without consuming a literal
// first (anchors, classes, optional or starred elements) ends extraction and
// yields an empty sequence.
//
// Example:
//
//	nodes, _ := syntax.Compile(`(cat|dog)\d+`)
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(nodes)
//	// prefixes = ["cat", "dog"], both incomplete
type Extractor struct {
	config ExtractorConfig
}

// New creates a new literal extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns the literals one of which every match of nodes
// starts with. The result is empty when no such set exists.
func (e *Extractor) ExtractPrefixes(nodes []syntax.Node) *Seq {
	lits, ok := e.prefixes(nodes)
	if !ok {
		return NewSeq()
	}
	seq := NewSeq(lits...)
	seq.Dedup()
	return seq
}

// prefixes extracts the prefixes of an ordered sequence. Completeness is
// relative to the sequence itself.
func (e *Extractor) prefixes(seq []syntax.Node) ([]Literal, bool) {
	if len(seq) == 0 {
		return nil, false
	}

	var buf []rune
	i := 0
	for i < len(seq) && seq[i].IsLiteral() && len(buf) < e.config.MaxLiteralLen {
		buf = append(buf, seq[i].Atom.Char)
		i++
	}
	if len(buf) > 0 {
		return []Literal{NewLiteral([]byte(string(buf)), i == len(seq))}, true
	}

	first := seq[0]
	var (
		lits []Literal
		ok   bool
	)
	switch first.Op {
	case syntax.OpGroup:
		lits, ok = e.prefixes(first.Sub)
	case syntax.OpAlternation:
		lits, ok = e.alternation(first)
	case syntax.OpOneOrMore:
		// The child must match at least once, but the repetition extends
		// past it, so nothing it yields is complete.
		lits, ok = e.prefixes(first.Sub)
		markIncomplete(lits)
	default:
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if len(seq) > 1 {
		markIncomplete(lits)
	}
	return lits, true
}

func (e *Extractor) alternation(n syntax.Node) ([]Literal, bool) {
	left, ok := e.prefixes([]syntax.Node{n.Sub[0]})
	if !ok {
		return nil, false
	}
	right, ok := e.prefixes([]syntax.Node{n.Sub[1]})
	if !ok {
		return nil, false
	}
	lits := append(left, right...)
	if len(lits) > e.config.MaxLiterals {
		return nil, false
	}
	return lits, true
}

func markIncomplete(lits []Literal) {
	for i := range lits {
		lits[i].Complete = false
	}
}
