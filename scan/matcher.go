// Package scan walks a compiled pattern over an input line and reports every
// non-overlapping match span.
//
// The Matcher combines two cursors: a CharCursor over the input characters
// and a PatternCursor over the top-level node sequence. Scanning is a single
// forward pass driven by a small state machine:
//
//	idle      try the first node at the current position
//	matching  a match is open; try the next node
//	closing   every node matched; record the span and start over
//
// A failed attempt rewinds the input to one character after the position
// where the attempt started. There is no backtracking into quantifiers or
// alternations, so /a+a/ never matches "aaa": the a+ consumes every a.
//
// A Matcher is single-use and not safe for concurrent use. Build one per
// input.
package scan

import (
	"github.com/coregx/linegrep/prefilter"
	"github.com/coregx/linegrep/syntax"
)

// Span is a half-open interval [Start, End) of character indices.
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers no characters.
func (s Span) Empty() bool { return s.End == s.Start }

type state uint8

const (
	stateIdle state = iota
	stateMatching
	stateClosing
	stateDone
)

// Option configures a Matcher.
type Option func(*Matcher)

// WithTracker lets the matcher skip directly to prefilter candidates while
// it is idle. The tracker's prefilter must only report positions where a
// match can start. Once the tracker retires its prefilter, the matcher
// steps one character at a time.
func WithTracker(t *prefilter.Tracker) Option {
	return func(m *Matcher) {
		m.tracker = t
	}
}

// Matcher finds the match spans of one pattern in one input.
type Matcher struct {
	chars    CharCursor
	patterns PatternCursor

	state      state
	matchStart int
	lastEnd    int
	spans      []Span

	tracker  *prefilter.Tracker
	haystack []byte
}

// NewMatcher prepares a scan of input with the compiled top-level sequence
// nodes. The nodes are borrowed, not copied, and must not be modified
// while the matcher is in use.
func NewMatcher(nodes []syntax.Node, input string, opts ...Option) *Matcher {
	m := &Matcher{
		chars:    NewCharCursor(input),
		patterns: NewPatternCursor(nodes),
		lastEnd:  -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tracker != nil {
		m.haystack = []byte(input)
	}
	return m
}

// Matches runs the scan to completion and returns the spans in discovery
// order. Spans never overlap and are sorted by Start. Calling Matches again
// returns the same spans.
func (m *Matcher) Matches() []Span {
	for m.state != stateDone {
		switch m.state {
		case stateIdle:
			m.stepIdle()
		case stateMatching:
			m.stepMatching()
		case stateClosing:
			m.stepClosing()
		}
	}
	return m.spans
}

// Matched reports whether at least one span was found.
func (m *Matcher) Matched() bool {
	return len(m.Matches()) > 0
}

// stepIdle tries to open a match at the current position. The end of the
// input is a position too, so zero-width patterns such as /$/ or /x*/ can
// match there.
func (m *Matcher) stepIdle() {
	if !m.skipToCandidate() {
		m.state = stateDone
		return
	}

	at := m.chars.Index()
	n, ok := m.patterns.Peek()
	if !ok {
		// Empty pattern: matches the empty string everywhere.
		m.matchStart = at
		m.state = stateClosing
		return
	}

	if m.match(n) {
		m.matchStart = at
		m.advance()
		return
	}

	if at >= m.chars.Len() {
		m.state = stateDone
		return
	}
	m.chars.SetIndex(at + 1)
}

// stepMatching evaluates the next top-level node of an open match.
func (m *Matcher) stepMatching() {
	n, _ := m.patterns.Peek()
	if m.match(n) {
		m.advance()
		return
	}

	// Abandon the attempt and restart one character after its start.
	restart := m.matchStart + 1
	m.patterns.Reset()
	if restart > m.chars.Len() {
		m.state = stateDone
		return
	}
	m.chars.SetIndex(restart)
	m.state = stateIdle
}

// stepClosing records the open match and resets for the next one.
func (m *Matcher) stepClosing() {
	span := Span{Start: m.matchStart, End: m.chars.Index()}

	// An empty match right where the previous match ended is not reported.
	if !span.Empty() || span.Start != m.lastEnd {
		m.spans = append(m.spans, span)
		if m.tracker != nil {
			m.tracker.ConfirmMatch()
		}
	}
	m.lastEnd = span.End
	m.patterns.Reset()
	m.state = stateIdle

	if span.Empty() {
		// Guarantee progress after a zero-width match.
		if m.chars.AtEnd() {
			m.state = stateDone
			return
		}
		m.chars.Consume()
	}
}

func (m *Matcher) advance() {
	m.patterns.Consume()
	if m.patterns.Done() {
		m.state = stateClosing
	} else {
		m.state = stateMatching
	}
}

// skipToCandidate moves the character cursor to the next prefilter
// candidate. It returns false when the prefilter proves no further match
// exists.
func (m *Matcher) skipToCandidate() bool {
	if m.tracker == nil || !m.tracker.IsActive() {
		return true
	}
	at := m.chars.Index()
	pos := m.tracker.Find(m.haystack, m.chars.ByteOffset(at))
	if pos < 0 {
		// A retired tracker also reports -1 but says nothing about the
		// remaining input.
		return !m.tracker.IsActive()
	}
	m.chars.SetIndex(m.chars.IndexAt(pos))
	return true
}
