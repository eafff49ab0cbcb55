// Package prefilter provides fast candidate filtering for the matcher using
// extracted literal prefixes.
//
// A prefilter quickly skips positions in the haystack where no match can
// start. The package selects a strategy from the extracted literals:
//   - Single byte → memchr (bytes.IndexByte)
//   - Single substring → memmem (bytes.Index)
//   - Several literals → Aho-Corasick automaton
//
// Example usage:
//
//	nodes, _ := syntax.Compile(`(hello|world)\d`)
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(nodes)
//
//	pf := prefilter.NewBuilder(prefixes).Build()
//	pos := pf.Find([]byte("foo hello1 bar"), 0)
//	// pos == 4
package prefilter

import (
	"bytes"

	"github.com/coregx/linegrep/literal"
)

// Prefilter finds candidate match start positions.
//
// Positions are byte offsets into the haystack. Prefilters are immutable
// and safe for concurrent use.
type Prefilter interface {
	// Find returns the byte offset of the first candidate at or after
	// start, or -1 if there is none.
	Find(haystack []byte, start int) int

	// FindMatch returns the byte range of the literal occurrence with the
	// smallest start at or after start, or (-1, -1). When IsComplete is
	// true that range is a full match.
	FindMatch(haystack []byte, start int) (int, int)

	// IsComplete reports whether a literal occurrence is itself a complete
	// match, so no verification by the matcher is needed.
	IsComplete() bool
}

// Builder constructs the best prefilter for a literal prefix sequence.
//
// Selection strategy (in order of preference):
//  1. Single one-byte literal → memchr
//  2. Single literal → memmem
//  3. Several literals → Aho-Corasick
//  4. Aho-Corasick unavailable → memmem over the longest common prefix
//  5. Nothing usable → nil
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a new prefilter builder from extracted prefixes.
// A nil or empty sequence builds no prefilter.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build returns the selected prefilter, or nil when the prefixes cannot
// support one.
func (b *Builder) Build() Prefilter {
	seq := b.prefixes
	if seq.IsEmpty() || seq.MinLen() == 0 {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if lit.Len() == 1 {
			return newMemchr(lit.Bytes[0], lit.Complete)
		}
		return newMemmem(lit.Bytes, lit.Complete)
	}

	if pf, err := newAhoCorasick(seq); err == nil {
		return pf
	}

	if lcp := seq.LongestCommonPrefix(); len(lcp) > 0 {
		return newMemmem(lcp, false)
	}
	return nil
}

// memchrPrefilter searches for a single byte.
type memchrPrefilter struct {
	b        byte
	complete bool
}

func newMemchr(b byte, complete bool) *memchrPrefilter {
	return &memchrPrefilter{b: b, complete: complete}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	i := bytes.IndexByte(haystack[start:], p.b)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memchrPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	pos := p.Find(haystack, start)
	if pos < 0 {
		return -1, -1
	}
	return pos, pos + 1
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

// memmemPrefilter searches for a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmem(needle []byte, complete bool) *memmemPrefilter {
	return &memmemPrefilter{needle: needle, complete: complete}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start+len(p.needle) > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memmemPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	pos := p.Find(haystack, start)
	if pos < 0 {
		return -1, -1
	}
	return pos, pos + len(p.needle)
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }
