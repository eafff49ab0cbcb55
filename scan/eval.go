package scan

import "github.com/coregx/linegrep/syntax"

// match evaluates n at the character cursor, consuming what it matches.
//
// Repetition is greedy and never backtracks: characters consumed by a
// successful sub-match stay consumed even if a later sibling in the same
// group fails. A Group that fails part-way leaves the cursor where the
// failing child stopped; whoever evaluated the group rewinds it.
func (m *Matcher) match(n *syntax.Node) bool {
	switch n.Op {
	case syntax.OpAtom:
		r, ok := m.chars.Peek()
		if !ok || !n.Atom.Matches(r) {
			return false
		}
		m.chars.Consume()
		return true

	case syntax.OpSet:
		r, ok := m.chars.Peek()
		if !ok || !n.Set.Matches(r) {
			return false
		}
		m.chars.Consume()
		return true

	case syntax.OpAnchor:
		if n.Anchor == syntax.AnchorStart {
			return m.chars.Index() == 0
		}
		return m.chars.AtEnd()

	case syntax.OpGroup:
		for i := range n.Sub {
			if !m.match(&n.Sub[i]) {
				return false
			}
		}
		return true

	case syntax.OpOneOrMore:
		return m.repeat(&n.Sub[0]) > 0

	case syntax.OpZeroOrMore:
		m.repeat(&n.Sub[0])
		return true

	case syntax.OpZeroOrOne:
		m.attempt(&n.Sub[0])
		return true

	case syntax.OpAlternation:
		return m.attempt(&n.Sub[0]) || m.attempt(&n.Sub[1])
	}
	return false
}

// attempt evaluates n and restores the cursor when n fails.
func (m *Matcher) attempt(n *syntax.Node) bool {
	at := m.chars.Index()
	if m.match(n) {
		return true
	}
	m.chars.SetIndex(at)
	return false
}

// repeat evaluates n greedily until it fails and returns the number of
// successful iterations. An iteration that consumes nothing ends the loop.
func (m *Matcher) repeat(n *syntax.Node) int {
	count := 0
	for {
		at := m.chars.Index()
		if !m.attempt(n) {
			return count
		}
		count++
		if m.chars.Index() == at {
			return count
		}
	}
}
