// Package conv converts between byte offsets and character indices.
//
// The matcher reports spans in character indices while prefilters and the
// byte-oriented public API work on byte offsets. Both sides share one table:
// the byte offset at which every character starts, followed by the length of
// the input.
package conv

import (
	"sort"
	"unicode/utf8"
)

// CharStarts returns the byte offset of each character of s, plus a final
// entry equal to len(s). The result has utf8.RuneCountInString(s)+1 entries.
func CharStarts(s string) []int {
	starts := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		starts = append(starts, i)
	}
	return append(starts, len(s))
}

// CharIndex returns the index of the character starting at byte offset b.
// Offsets inside a multi-byte character round up to the next character.
// Offsets past the end map to the character count.
func CharIndex(starts []int, b int) int {
	i := sort.SearchInts(starts, b)
	if i >= len(starts) {
		return len(starts) - 1
	}
	return i
}

// ByteSpan converts the character interval [start, end) to byte offsets.
func ByteSpan(starts []int, start, end int) (int, int) {
	return starts[start], starts[end]
}
