package scan

import (
	"github.com/coregx/linegrep/internal/conv"
	"github.com/coregx/linegrep/syntax"
)

// CharCursor is a position-tracking view over the characters of an input.
//
// Index 0 is the first character. The cursor owns its decoded character
// sequence; it is mutated only by Consume and SetIndex.
type CharCursor struct {
	chars  []rune
	starts []int
	index  int
}

// NewCharCursor decodes input into characters and positions the cursor at
// index 0.
func NewCharCursor(input string) CharCursor {
	return CharCursor{
		chars:  []rune(input),
		starts: conv.CharStarts(input),
	}
}

// Peek returns the character at the current index. ok is false past the end.
func (c *CharCursor) Peek() (r rune, ok bool) {
	if c.index >= len(c.chars) {
		return 0, false
	}
	return c.chars[c.index], true
}

// Consume advances by one character. At the end it does nothing.
func (c *CharCursor) Consume() {
	if c.index < len(c.chars) {
		c.index++
	}
}

// SetIndex jumps to character index i, clamped to [0, Len()].
func (c *CharCursor) SetIndex(i int) {
	switch {
	case i < 0:
		i = 0
	case i > len(c.chars):
		i = len(c.chars)
	}
	c.index = i
}

// Index returns the current character index.
func (c *CharCursor) Index() int { return c.index }

// Len returns the number of characters in the input.
func (c *CharCursor) Len() int { return len(c.chars) }

// AtEnd reports whether no characters remain.
func (c *CharCursor) AtEnd() bool { return c.index >= len(c.chars) }

// ByteOffset returns the byte offset of character index i. Len() maps to
// the input's byte length.
func (c *CharCursor) ByteOffset(i int) int { return c.starts[i] }

// IndexAt returns the character index that starts at byte offset b.
func (c *CharCursor) IndexAt(b int) int { return conv.CharIndex(c.starts, b) }

// PatternCursor tracks how far the current match attempt has progressed
// through the top-level node sequence. It never modifies the nodes.
type PatternCursor struct {
	nodes []syntax.Node
	index int
}

// NewPatternCursor returns a cursor at the start of nodes.
func NewPatternCursor(nodes []syntax.Node) PatternCursor {
	return PatternCursor{nodes: nodes}
}

// Peek returns the node at the current index. ok is false once the
// sequence is exhausted.
func (p *PatternCursor) Peek() (n *syntax.Node, ok bool) {
	if p.index >= len(p.nodes) {
		return nil, false
	}
	return &p.nodes[p.index], true
}

// Consume advances to the next node.
func (p *PatternCursor) Consume() {
	if p.index < len(p.nodes) {
		p.index++
	}
}

// Reset returns to the first node.
func (p *PatternCursor) Reset() { p.index = 0 }

// Index returns the current position in the sequence.
func (p *PatternCursor) Index() int { return p.index }

// Len returns the length of the sequence.
func (p *PatternCursor) Len() int { return len(p.nodes) }

// Done reports whether the sequence is exhausted.
func (p *PatternCursor) Done() bool { return p.index >= len(p.nodes) }
