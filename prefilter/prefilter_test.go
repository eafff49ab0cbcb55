package prefilter

import (
	"strings"
	"testing"

	"github.com/coregx/linegrep/literal"
	"github.com/coregx/linegrep/syntax"
)

func buildFor(t *testing.T, pattern string) Prefilter {
	t.Helper()
	nodes, err := syntax.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return NewBuilder(literal.New(literal.DefaultConfig()).ExtractPrefixes(nodes)).Build()
}

func TestBuilderSelection(t *testing.T) {
	tests := []struct {
		pattern  string
		wantType string
		complete bool
	}{
		{`x`, "memchr", true},
		{`x\d`, "memchr", false},
		{`hello`, "memmem", true},
		{`hello\d+`, "memmem", false},
		{`cat|dog`, "ahocorasick", true},
		{`(cat|dog)s`, "ahocorasick", false},
		{`\d+`, "", false},
		{`^abc`, "", false},
		{``, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			pf := buildFor(t, tt.pattern)

			var got string
			switch pf.(type) {
			case nil:
				got = ""
			case *memchrPrefilter:
				got = "memchr"
			case *memmemPrefilter:
				got = "memmem"
			case *ahoCorasickPrefilter:
				got = "ahocorasick"
			default:
				got = "unknown"
			}
			if got != tt.wantType {
				t.Fatalf("Build(%q) = %s, want %s", tt.pattern, got, tt.wantType)
			}
			if pf != nil && pf.IsComplete() != tt.complete {
				t.Errorf("IsComplete() = %v, want %v", pf.IsComplete(), tt.complete)
			}
		})
	}
}

func TestBuilderEmpty(t *testing.T) {
	if pf := NewBuilder(nil).Build(); pf != nil {
		t.Errorf("Build(nil) = %T, want nil", pf)
	}
	if pf := NewBuilder(literal.NewSeq()).Build(); pf != nil {
		t.Errorf("Build(empty) = %T, want nil", pf)
	}
	empty := literal.NewSeq(literal.NewLiteral(nil, true))
	if pf := NewBuilder(empty).Build(); pf != nil {
		t.Errorf("Build(zero-length literal) = %T, want nil", pf)
	}
}

func TestPrefilterFind(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		start    int
		want     int
	}{
		{`x`, "aaxbx", 0, 2},
		{`x`, "aaxbx", 3, 4},
		{`x`, "aaxbx", 5, -1},
		{`x`, "aaa", 0, -1},
		{`abc`, "zzabcabc", 0, 2},
		{`abc`, "zzabcabc", 3, 5},
		{`abc`, "zzabcab", 3, -1},
		{`abc`, "ab", 0, -1},
		{`cat|dog`, "a dog and a cat", 0, 2},
		{`cat|dog`, "a dog and a cat", 3, 12},
		{`cat|dog`, "a dog and a cat", 13, -1},
		{`cat|dog`, "", 0, -1},
		{`日本`, "こんにちは日本", 0, 15},

		// A shorter literal can end before a longer one that starts first.
		{`abcd|bc`, "abcd", 0, 0},
		{`(abcd|bc)x`, "abcdx", 0, 0},
		{`(abcd|bc)x`, "xbcabcd", 0, 1},
		{`(abcd|bc)x`, "xbcabcd", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.haystack, func(t *testing.T) {
			pf := buildFor(t, tt.pattern)
			if got := pf.Find([]byte(tt.haystack), tt.start); got != tt.want {
				t.Errorf("Find(%q, %d) = %d, want %d", tt.haystack, tt.start, got, tt.want)
			}
		})
	}
}

func TestPrefilterFindMatch(t *testing.T) {
	tests := []struct {
		pattern   string
		haystack  string
		start     int
		wantStart int
		wantEnd   int
	}{
		{`x`, "aaxbx", 0, 2, 3},
		{`hello`, "say hello", 0, 4, 9},
		{`hello`, "say hello", 5, -1, -1},
		{`cat|horse`, "the horse", 0, 4, 9},
		{`ab|cd`, "xxcdab", 0, 2, 4},
		{`ab|cd`, "xxcdab", 3, 4, 6},
		{`abcd|bc`, "abcd", 0, 0, 4},
		{`abcd|bc`, "zabcbc", 0, 2, 4},
		{`abcd|bc`, "zabcbc", 3, 4, 6},
		{`(a|b)|1ba`, "b1baaba", 1, 1, 4},
		{`(a|b)|1ba`, "b1baaba", 4, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.haystack, func(t *testing.T) {
			pf := buildFor(t, tt.pattern)
			start, end := pf.FindMatch([]byte(tt.haystack), tt.start)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("FindMatch(%q, %d) = (%d, %d), want (%d, %d)",
					tt.haystack, tt.start, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestAhoCorasickLeftmostLongHaystack(t *testing.T) {
	pf := buildFor(t, `abcd|bc`)
	haystack := []byte(strings.Repeat("z", 150) + "abcd")

	if got := pf.Find(haystack, 0); got != 150 {
		t.Errorf("Find() = %d, want 150", got)
	}
	start, end := pf.FindMatch(haystack, 0)
	if start != 150 || end != 154 {
		t.Errorf("FindMatch() = (%d, %d), want (150, 154)", start, end)
	}
}
