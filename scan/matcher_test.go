package scan

import (
	"fmt"
	"math/rand"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/coregx/linegrep/literal"
	"github.com/coregx/linegrep/prefilter"
	"github.com/coregx/linegrep/syntax"
)

func mustCompile(t testing.TB, pattern string) []syntax.Node {
	t.Helper()
	nodes, err := syntax.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return nodes
}

func spans(pairs ...int) []Span {
	var out []Span
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Span{Start: pairs[i], End: pairs[i+1]})
	}
	return out
}

var matchTests = []struct {
	pattern string
	input   string
	want    []Span
}{
	// Scenarios.
	{`\d+`, "ab123cd456", spans(2, 5, 7, 10)},
	{`^(cat|dog)$`, "dog", spans(0, 3)},
	{`^(cat|dog)$`, "dogs", nil},
	{`colou?r`, "color and colour", spans(0, 5, 10, 16)},

	// Literals.
	{`abc`, "xxabcabc", spans(2, 5, 5, 8)},
	{`aab`, "aaab", spans(1, 4)},
	{`abc`, "ab", nil},
	{`日本`, "こんにちは日本", spans(5, 7)},
	{`\$\d`, "cost $5", spans(5, 7)},

	// Classes.
	{`\w+`, "hi there_1!", spans(0, 2, 3, 11)},
	{`[abc]+`, "xxbcaz", spans(2, 5)},
	{`[^abc]+`, "abxyc", spans(2, 4)},
	{`.`, "日本", spans(0, 1, 1, 2)},
	{`a.c`, "abc a c", spans(0, 3, 4, 7)},

	// Anchors.
	{`^abc`, "abcabc", spans(0, 3)},
	{`abc$`, "abcabc", spans(3, 6)},
	{`^abc$`, "abcabc", nil},
	{`a^b`, "ab", nil},
	{`^`, "ab", spans(0, 0)},
	{`$`, "ab", spans(2, 2)},
	{`^$`, "", spans(0, 0)},
	{`^$`, "a", nil},

	// End of input: the remaining nodes are tried against the empty rest.
	{`a$b`, "a", nil},
	{`ab?`, "a", spans(0, 1)},
	{`ab*$`, "a", spans(0, 1)},
	{`ab`, "a", nil},

	// Quantifiers.
	{`ca?t`, "ct cat", spans(0, 2, 3, 6)},
	{`(ab)+`, "ababa", spans(0, 4)},
	{`a**`, "aa", spans(0, 2)},
	{`(^a)+`, "aa", spans(0, 1)},
	{`x*`, "ab", spans(0, 0, 1, 1, 2, 2)},
	{`\d*`, "12a", spans(0, 2, 3, 3)},
	{`a?`, "", spans(0, 0)},
	{``, "ab", spans(0, 0, 1, 1, 2, 2)},

	// Alternation.
	{`a|ab`, "ab", spans(0, 1)},
	{`(a|b)c`, "bc", spans(0, 2)},
	{`(ab|ac)`, "ac", spans(0, 2)},
	{`cat|dog`, "hotdog catalog", spans(3, 6, 7, 10)},
	{`abcd|bc`, "xbcabcd", spans(1, 3, 3, 7)},
	{`(abcd|bc)x`, "abcdx", spans(0, 5)},

	// Greedy, no backtracking.
	{`a+a`, "aaa", nil},
	{`\d+\d`, "123", nil},
	{`(a|ab)c`, "abc", nil},
}

func TestMatches(t *testing.T) {
	for _, tt := range matchTests {
		t.Run(fmt.Sprintf("%s/%s", tt.pattern, tt.input), func(t *testing.T) {
			m := NewMatcher(mustCompile(t, tt.pattern), tt.input)
			got := m.Matches()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
			if m.Matched() != (len(tt.want) > 0) {
				t.Errorf("Matched(%q, %q) = %v", tt.pattern, tt.input, m.Matched())
			}
		})
	}
}

func TestMatchesIdempotent(t *testing.T) {
	m := NewMatcher(mustCompile(t, `\d+`), "1 22 333")
	first := m.Matches()
	second := m.Matches()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second call = %v, want %v", second, first)
	}
}

// TestWithTracker checks that prefilter skipping never changes the result.
func TestWithTracker(t *testing.T) {
	extractor := literal.New(literal.DefaultConfig())

	for _, tt := range matchTests {
		nodes := mustCompile(t, tt.pattern)
		pf := prefilter.NewBuilder(extractor.ExtractPrefixes(nodes)).Build()
		if pf == nil {
			continue
		}
		t.Run(fmt.Sprintf("%s/%s", tt.pattern, tt.input), func(t *testing.T) {
			got := NewMatcher(nodes, tt.input, WithTracker(prefilter.NewTracker(pf))).Matches()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestWithRetiredTracker(t *testing.T) {
	nodes := mustCompile(t, `ab\d`)
	pf := prefilter.NewBuilder(literal.New(literal.DefaultConfig()).ExtractPrefixes(nodes)).Build()
	if pf == nil {
		t.Fatal("no prefilter for ab\\d")
	}
	tracker := prefilter.NewTrackerWithConfig(pf, prefilter.TrackerConfig{
		CheckInterval: 1,
		MinEfficiency: 0.9,
		WarmupPeriod:  1,
	})

	input := strings.Repeat("abx ", 10) + "ab1"
	got := NewMatcher(nodes, input, WithTracker(tracker)).Matches()
	want := spans(40, 43)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Matches = %v, want %v", got, want)
	}
	if tracker.IsActive() {
		t.Error("tracker still active after repeated false positives")
	}
}

// TestLiteralEqualsSubstringSearch: a pattern of plain literals finds exactly
// the leftmost non-overlapping occurrences.
func TestLiteralEqualsSubstringSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gen := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = "ab"[rng.Intn(2)]
		}
		return string(b)
	}

	for i := 0; i < 500; i++ {
		pattern := gen(1 + rng.Intn(3))
		input := gen(rng.Intn(12))

		oracle := regexp.MustCompile(regexp.QuoteMeta(pattern)).FindAllStringIndex(input, -1)
		var want []Span
		for _, loc := range oracle {
			want = append(want, Span{Start: loc[0], End: loc[1]})
		}

		got := NewMatcher(mustCompile(t, pattern), input).Matches()
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Matches(%q, %q) = %v, want %v", pattern, input, got, want)
		}
		if (len(got) > 0) != strings.Contains(input, pattern) {
			t.Fatalf("Matched(%q, %q) disagrees with strings.Contains", pattern, input)
		}
	}
}

func TestAnchorIdentities(t *testing.T) {
	inputs := []string{"", "abc", "abcd", "xabc", "xabcx", "ab", "abcabc", "aabc"}

	for _, in := range inputs {
		if got := NewMatcher(mustCompile(t, `^abc`), in).Matched(); got != strings.HasPrefix(in, "abc") {
			t.Errorf("^abc on %q = %v", in, got)
		}
		if got := NewMatcher(mustCompile(t, `abc$`), in).Matched(); got != strings.HasSuffix(in, "abc") {
			t.Errorf("abc$ on %q = %v", in, got)
		}
		if got := NewMatcher(mustCompile(t, `^abc$`), in).Matched(); got != (in == "abc") {
			t.Errorf("^abc$ on %q = %v", in, got)
		}
	}
}

func TestSpansOrdered(t *testing.T) {
	patterns := []string{`\d+`, `a*`, `(a|b)+`, `.`, `x?`, `[^ ]+`, `a|ab`, `\w*\d`}
	inputs := []string{"", "a", "ab ab", "a1 b22 c333", "aaa bbb", "日本 語"}

	for _, p := range patterns {
		nodes := mustCompile(t, p)
		for _, in := range inputs {
			got := NewMatcher(nodes, in).Matches()
			for i := 1; i < len(got); i++ {
				if got[i].Start < got[i-1].End {
					t.Errorf("Matches(%q, %q) overlap: %v", p, in, got)
				}
			}
			for _, s := range got {
				if s.Start < 0 || s.End < s.Start || s.End > len([]rune(in)) {
					t.Errorf("Matches(%q, %q) bad span %v", p, in, s)
				}
			}
		}
	}
}
