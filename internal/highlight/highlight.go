// Package highlight decorates match spans with ANSI escape sequences.
package highlight

import (
	"strings"

	"github.com/coregx/linegrep/internal/conv"
	"github.com/coregx/linegrep/scan"
)

// Escape sequences wrapped around every highlighted span: bold red on, then
// reset.
const (
	Start = "\x1B[1;31m"
	Reset = "\x1B[0m"
)

// Line returns line with every non-empty span wrapped in Start and Reset.
// Spans are character indices as produced by the matcher and must not
// overlap. Spans are processed from the last to the first so that inserting
// markers never shifts a position that is still to be decorated.
func Line(line string, spans []scan.Span) string {
	if len(spans) == 0 {
		return line
	}

	starts := conv.CharStarts(line)
	out := line
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		if s.Empty() {
			continue
		}
		start, end := conv.ByteSpan(starts, s.Start, s.End)
		out = out[:end] + Reset + out[end:]
		out = out[:start] + Start + out[start:]
	}
	return out
}

// Strip removes the escape sequences Line inserts.
func Strip(s string) string {
	return strings.NewReplacer(Start, "", Reset, "").Replace(s)
}
