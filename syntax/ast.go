// Package syntax parses linegrep patterns into a tree of pattern nodes.
//
// The accepted syntax is deliberately small:
//   - literal characters
//   - \d (ASCII digit), \w (letter, digit or underscore)
//   - backslash escapes of the metacharacters ^ $ \ + * ? . ( ) [ ] |
//   - . (any character)
//   - [abc] and [^abc] sets of literal characters
//   - ^ and $ anchors
//   - postfix +, * and ? on the preceding element
//   - (...) grouping and | alternation
//
// Compile returns the top-level sequence of nodes. A group node has the same
// shape as the top level: an ordered sequence that matches when every member
// matches in order.
//
// Example:
//
//	nodes, err := syntax.Compile(`^(cat|dog)s?$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(syntax.Format(nodes))
//	// {^ {(| {c a t} {d o g})} (? s) $}
package syntax

import "unicode"

// AtomKind identifies the predicate an Atom applies to a single character.
type AtomKind uint8

const (
	// AtomChar matches one specific character.
	AtomChar AtomKind = iota

	// AtomDigit matches an ASCII digit 0-9.
	AtomDigit

	// AtomWord matches a letter, a digit or an underscore.
	AtomWord

	// AtomAny matches any character.
	AtomAny
)

// Atom is a predicate over one character.
type Atom struct {
	Kind AtomKind

	// Char is the literal character for AtomChar and unused otherwise.
	Char rune
}

// Matches reports whether r satisfies the atom.
func (a Atom) Matches(r rune) bool {
	switch a.Kind {
	case AtomChar:
		return r == a.Char
	case AtomDigit:
		return r >= '0' && r <= '9'
	case AtomWord:
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	case AtomAny:
		return true
	default:
		return false
	}
}

// Anchor is a zero-width positional predicate.
type Anchor uint8

const (
	// AnchorStart holds only at character index 0.
	AnchorStart Anchor = iota

	// AnchorEnd holds only when no characters remain.
	AnchorEnd
)

// Set is a character class built from literal atoms.
type Set struct {
	// Negated inverts membership: the set matches characters equal to none
	// of its members.
	Negated bool

	Members []Atom
}

// Matches reports whether r is accepted by the set.
func (s Set) Matches(r rune) bool {
	in := false
	for _, m := range s.Members {
		if m.Matches(r) {
			in = true
			break
		}
	}
	return in != s.Negated
}

// Op is the kind of a pattern node.
type Op uint8

const (
	// OpAtom is a single-character predicate. See Node.Atom.
	OpAtom Op = iota

	// OpAnchor is a zero-width position check. See Node.Anchor.
	OpAnchor

	// OpSet is a character class. See Node.Set.
	OpSet

	// OpGroup is an ordered sequence; Sub holds its members.
	OpGroup

	// OpOneOrMore repeats Sub[0] greedily, at least once.
	OpOneOrMore

	// OpZeroOrMore repeats Sub[0] greedily, possibly zero times.
	OpZeroOrMore

	// OpZeroOrOne matches Sub[0] at most once.
	OpZeroOrOne

	// OpAlternation tries Sub[0], then Sub[1].
	OpAlternation
)

// String returns the operator name used in diagnostics.
func (op Op) String() string {
	switch op {
	case OpAtom:
		return "atom"
	case OpAnchor:
		return "anchor"
	case OpSet:
		return "set"
	case OpGroup:
		return "group"
	case OpOneOrMore:
		return "one-or-more"
	case OpZeroOrMore:
		return "zero-or-more"
	case OpZeroOrOne:
		return "zero-or-one"
	case OpAlternation:
		return "alternation"
	default:
		return "unknown"
	}
}

// Node is one element of a compiled pattern.
//
// Only the fields relevant to Op are meaningful:
//   - OpAtom: Atom
//   - OpAnchor: Anchor
//   - OpSet: Set
//   - OpGroup: Sub is the ordered member sequence
//   - OpOneOrMore, OpZeroOrMore, OpZeroOrOne: Sub has exactly one element
//   - OpAlternation: Sub has exactly two elements, left first
//
// Children are owned by value; a compiled tree never shares nodes and is
// not modified after Compile returns.
type Node struct {
	Op     Op
	Atom   Atom
	Anchor Anchor
	Set    Set
	Sub    []Node
}

// Lit returns a literal character node.
func Lit(r rune) Node { return Node{Op: OpAtom, Atom: Atom{Kind: AtomChar, Char: r}} }

// Digit returns a \d node.
func Digit() Node { return Node{Op: OpAtom, Atom: Atom{Kind: AtomDigit}} }

// Word returns a \w node.
func Word() Node { return Node{Op: OpAtom, Atom: Atom{Kind: AtomWord}} }

// Any returns a . node.
func Any() Node { return Node{Op: OpAtom, Atom: Atom{Kind: AtomAny}} }

// Start returns a ^ node.
func Start() Node { return Node{Op: OpAnchor, Anchor: AnchorStart} }

// End returns a $ node.
func End() Node { return Node{Op: OpAnchor, Anchor: AnchorEnd} }

// CharSet returns a set node over the given literal characters.
func CharSet(negated bool, chars ...rune) Node {
	members := make([]Atom, len(chars))
	for i, c := range chars {
		members[i] = Atom{Kind: AtomChar, Char: c}
	}
	return Node{Op: OpSet, Set: Set{Negated: negated, Members: members}}
}

// Group returns an ordered sequence node.
func Group(sub ...Node) Node { return Node{Op: OpGroup, Sub: sub} }

// OneOrMore wraps n in a + quantifier.
func OneOrMore(n Node) Node { return Node{Op: OpOneOrMore, Sub: []Node{n}} }

// ZeroOrMore wraps n in a * quantifier.
func ZeroOrMore(n Node) Node { return Node{Op: OpZeroOrMore, Sub: []Node{n}} }

// ZeroOrOne wraps n in a ? quantifier.
func ZeroOrOne(n Node) Node { return Node{Op: OpZeroOrOne, Sub: []Node{n}} }

// Alternation returns a two-branch alternation; left is tried first.
func Alternation(left, right Node) Node {
	return Node{Op: OpAlternation, Sub: []Node{left, right}}
}

// IsLiteral reports whether n is a literal character atom.
func (n Node) IsLiteral() bool {
	return n.Op == OpAtom && n.Atom.Kind == AtomChar
}
