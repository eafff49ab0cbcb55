package syntax

// DefaultMaxDepth is the group nesting limit used by Compile.
const DefaultMaxDepth = 1000

// ParserOptions tunes compilation.
type ParserOptions struct {
	// MaxDepth limits how deeply groups may nest. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Compile parses pattern with default options and returns its top-level
// node sequence.
//
// On failure the returned error is a *Error and no nodes are returned.
func Compile(pattern string) ([]Node, error) {
	return CompileWithOptions(pattern, nil)
}

// CompileWithOptions is like Compile but honours opts. A nil opts is
// equivalent to the zero value.
func CompileWithOptions(pattern string, opts *ParserOptions) ([]Node, error) {
	p := newParser(pattern, opts)
	nodes, err := p.compile(0)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// isMeta reports whether c may follow a backslash to denote itself.
func isMeta(c rune) bool {
	switch c {
	case '^', '$', '\\', '+', '*', '?', '.', '(', ')', '[', ']', '|':
		return true
	}
	return false
}

type parser struct {
	pattern  string
	src      []rune
	pos      int
	maxDepth int
}

func newParser(pattern string, opts *ParserOptions) *parser {
	p := &parser{
		pattern:  pattern,
		src:      []rune(pattern),
		maxDepth: DefaultMaxDepth,
	}
	if opts != nil && opts.MaxDepth > 0 {
		p.maxDepth = opts.MaxDepth
	}
	return p
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) next() (rune, bool) {
	c, ok := p.peek()
	if ok {
		p.pos++
	}
	return c, ok
}

func (p *parser) errorf(pos int, err error) error {
	return &Error{Pattern: p.pattern, Pos: pos, Err: err}
}

// compile reads nodes until the end of the pattern (depth 0) or the closing
// parenthesis of the current group (depth > 0). The closing parenthesis is
// consumed.
func (p *parser) compile(depth int) ([]Node, error) {
	if depth > p.maxDepth {
		return nil, p.errorf(p.pos, ErrNestingDepth)
	}

	var seq []Node
	for {
		start := p.pos
		c, ok := p.next()
		if !ok {
			break
		}

		switch c {
		case '\\':
			n, err := p.compileEscape(start)
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)
		case '[':
			n, err := p.compileSet(start)
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)
		case ']':
			return nil, p.errorf(start, ErrUnopenedSet)
		case '^':
			seq = append(seq, Start())
		case '$':
			seq = append(seq, End())
		case '+', '*', '?':
			if len(seq) == 0 {
				return nil, p.errorf(start, ErrMissingRepeatArgument)
			}
			last := seq[len(seq)-1]
			seq[len(seq)-1] = repeat(c, last)
		case '.':
			seq = append(seq, Any())
		case '(':
			sub, err := p.compile(depth + 1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, Group(sub...))
		case ')':
			if depth == 0 {
				return nil, p.errorf(start, ErrUnopenedGroup)
			}
			return seq, nil
		case '|':
			rest, err := p.compile(depth)
			if err != nil {
				return nil, err
			}
			alt := Alternation(Group(seq...), Group(rest...))
			if depth > 0 {
				// The recursive call already consumed this group's ')'.
				return []Node{alt}, nil
			}
			seq = []Node{alt}
		default:
			seq = append(seq, Lit(c))
		}
	}

	if depth > 0 {
		return nil, p.errorf(p.pos, ErrUnclosedGroup)
	}
	return seq, nil
}

func repeat(op rune, n Node) Node {
	switch op {
	case '+':
		return OneOrMore(n)
	case '*':
		return ZeroOrMore(n)
	default:
		return ZeroOrOne(n)
	}
}

func (p *parser) compileEscape(start int) (Node, error) {
	c, ok := p.next()
	if !ok {
		return Node{}, p.errorf(start, ErrUnfinishedEscape)
	}
	switch {
	case c == 'd':
		return Digit(), nil
	case c == 'w':
		return Word(), nil
	case isMeta(c):
		return Lit(c), nil
	}
	return Node{}, p.errorf(start, ErrUnhandledEscape)
}

func (p *parser) compileSet(start int) (Node, error) {
	negated := false
	if c, ok := p.peek(); ok && c == '^' {
		p.pos++
		negated = true
	}

	var chars []rune
	for {
		c, ok := p.next()
		if !ok {
			return Node{}, p.errorf(start, ErrUnclosedSet)
		}
		if c == ']' {
			return CharSet(negated, chars...), nil
		}
		chars = append(chars, c)
	}
}
