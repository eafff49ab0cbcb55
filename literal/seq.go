// Package literal extracts literal strings that every match of a compiled
// pattern must begin with.
//
// The primary use case is prefiltering: if every match of /(cat|dog)s?/
// starts with "cat" or "dog", the matcher never needs to attempt a match at a
// position where neither word occurs.
//
// Key concepts:
//   - A Literal is a concrete byte sequence (UTF-8 of the pattern characters)
//   - A Seq is a set of alternative literals, in pattern priority order
//   - A complete literal describes the entire match, so finding it is
//     finding the match
package literal

import "bytes"

// Literal is a byte sequence extracted from a pattern.
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello"), true}
//   - Pattern /hello\d+/ → Literal{[]byte("hello"), false} (prefix only)
type Literal struct {
	// Bytes contains the literal text.
	Bytes []byte

	// Complete indicates whether this literal represents the entire match.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is an ordered set of alternative literals. Order follows the pattern:
// for /ab|a/ the literal "ab" comes first, because that branch is tried
// first.
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("cat"), true),
//	    literal.NewLiteral([]byte("dog"), true),
//	)
//	fmt.Println(seq.Len()) // Output: 2
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals. A nil *Seq is empty.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// AllComplete reports whether the sequence is non-empty and every literal
// is complete.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	m := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		if lit.Len() < m {
			m = lit.Len()
		}
	}
	return m
}

// Dedup removes repeated literals, keeping the first occurrence so that
// priority order is preserved. A repeated literal is complete only if its
// first occurrence is.
func (s *Seq) Dedup() {
	if s.Len() < 2 {
		return
	}
	out := s.literals[:0]
	for _, lit := range s.literals {
		dup := false
		for _, kept := range out {
			if bytes.Equal(kept.Bytes, lit.Bytes) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, lit)
		}
	}
	s.literals = out
}

// LongestCommonPrefix returns the longest common prefix of all literals in the sequence.
// If the sequence is empty or has no common prefix, returns an empty slice.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("hello"), true),
//	    literal.NewLiteral([]byte("help"), true),
//	    literal.NewLiteral([]byte("hero"), true),
//	)
//	prefix := seq.LongestCommonPrefix()
//	fmt.Println(string(prefix)) // Output: he
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}

	prefix := s.literals[0].Bytes
	for i := 1; i < len(s.literals); i++ {
		prefix = commonPrefix(prefix, s.literals[i].Bytes)
		if len(prefix) == 0 {
			return []byte{}
		}
	}

	// Return a copy to avoid aliasing issues
	result := make([]byte, len(prefix))
	copy(result, prefix)
	return result
}

// commonPrefix returns the longest common prefix of a and b.
func commonPrefix(a, b []byte) []byte {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	for i := 0; i < minLen; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:minLen]
}
