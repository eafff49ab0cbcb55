package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/linegrep/literal"
)

// ahoCorasickPrefilter searches for several literals at once.
//
// The automaton stops at the first literal to end, which is not always the
// one that starts first: in "abcd" with {abcd, bc} it reports bc at 1. The
// matcher needs the leftmost start, so leftmost re-checks the positions
// before the reported one with anchored lookups.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	complete bool
}

func newAhoCorasick(seq *literal.Seq) (*ahoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{auto: auto, complete: seq.AllComplete()}, nil
}

// leftmost returns the literal occurrence with the smallest start at or
// after start, or nil.
func (p *ahoCorasickPrefilter) leftmost(haystack []byte, start int) *ahocorasick.Match {
	if start >= len(haystack) {
		return nil
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return nil
	}
	// Any earlier occurrence ends after m, so it starts in [start, m.Start).
	for at := start; at < m.Start; at++ {
		if earlier := p.auto.FindAt(haystack, at); earlier != nil {
			return earlier
		}
	}
	return m
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	m := p.leftmost(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	m := p.leftmost(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }
