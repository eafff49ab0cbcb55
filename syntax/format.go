package syntax

import (
	"fmt"
	"strings"
)

// Format renders a node sequence as an s-expression, mainly for tests and
// debugging output. Sequences print as {a b c}, quantifiers as (+ x),
// (* x) and (? x), and alternation as (| left right).
func Format(nodes []Node) string {
	var sb strings.Builder
	formatSeq(&sb, nodes)
	return sb.String()
}

// String returns the s-expression form of n.
func (n Node) String() string {
	var sb strings.Builder
	formatNode(&sb, n)
	return sb.String()
}

func formatSeq(sb *strings.Builder, nodes []Node) {
	sb.WriteByte('{')
	for i, n := range nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		formatNode(sb, n)
	}
	sb.WriteByte('}')
}

func formatNode(sb *strings.Builder, n Node) {
	switch n.Op {
	case OpAtom:
		formatAtom(sb, n.Atom)
	case OpAnchor:
		if n.Anchor == AnchorStart {
			sb.WriteByte('^')
		} else {
			sb.WriteByte('$')
		}
	case OpSet:
		sb.WriteByte('[')
		if n.Set.Negated {
			sb.WriteByte('^')
		}
		for _, m := range n.Set.Members {
			sb.WriteRune(m.Char)
		}
		sb.WriteByte(']')
	case OpGroup:
		formatSeq(sb, n.Sub)
	case OpOneOrMore:
		formatUnary(sb, "+", n.Sub[0])
	case OpZeroOrMore:
		formatUnary(sb, "*", n.Sub[0])
	case OpZeroOrOne:
		formatUnary(sb, "?", n.Sub[0])
	case OpAlternation:
		sb.WriteString("(| ")
		formatNode(sb, n.Sub[0])
		sb.WriteByte(' ')
		formatNode(sb, n.Sub[1])
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "<op=%d>", n.Op)
	}
}

func formatUnary(sb *strings.Builder, op string, sub Node) {
	sb.WriteByte('(')
	sb.WriteString(op)
	sb.WriteByte(' ')
	formatNode(sb, sub)
	sb.WriteByte(')')
}

func formatAtom(sb *strings.Builder, a Atom) {
	switch a.Kind {
	case AtomDigit:
		sb.WriteString(`\d`)
	case AtomWord:
		sb.WriteString(`\w`)
	case AtomAny:
		sb.WriteByte('.')
	default:
		if isMeta(a.Char) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(a.Char)
	}
}
