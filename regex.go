// Package linegrep matches a small regular-expression dialect against single
// lines of text.
//
// The dialect supports literal characters, the classes \d (ASCII digit), \w
// (letter, digit or underscore) and . (any character), bracket sets [abc] and
// [^abc], the anchors ^ and $, the greedy quantifiers + * ?, groups and
// alternation. A backslash before one of ^ $ \ + * ? . ( ) [ ] | matches that
// character literally.
//
// Matching is greedy and never backtracks. Once a quantifier has consumed
// characters, or an alternation has picked a branch, the choice stands:
//
//	linegrep.MustCompile(`a+a`).MatchString("aaa") // false
//	linegrep.MustCompile(`a|ab`).FindString("ab")  // "a"
//
// Basic usage:
//
//	re, err := linegrep.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(re.FindAllString("ab123cd456", -1)) // [123 456]
//
// Spans returned by FindAllSpans are character indices; the *Index methods
// return byte offsets like the standard regexp package.
package linegrep

import (
	"strings"

	"github.com/coregx/linegrep/internal/conv"
	"github.com/coregx/linegrep/meta"
	"github.com/coregx/linegrep/scan"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := linegrep.MustCompile(`colou?r`)
//	if re.MatchString("my favourite colour") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile parses a pattern and returns a Regex that matches it.
//
// Errors are *syntax.Error values; use errors.Is with the syntax sentinels
// (syntax.ErrUnclosedSet, ...) to classify them.
//
// Example:
//
//	re, err := linegrep.Compile(`^(cat|dog)$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
//
// Example:
//
//	var digits = linegrep.MustCompile(`\d+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("linegrep: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom engine configuration.
//
// Example:
//
//	config := linegrep.DefaultConfig()
//	config.EnablePrefilter = false // Always scan every position
//	re, err := linegrep.CompileWithConfig(`hello\d`, config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// QuoteMeta returns a string that escapes every metacharacter of the
// dialect inside s; the result is a pattern matching s literally.
//
// Example:
//
//	escaped := linegrep.QuoteMeta("1+1=2?")
//	// escaped = `1\+1=2\?`
func QuoteMeta(s string) string {
	const special = `^$\+*?.()[]|`

	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(string(b))
}

// MatchString reports whether s contains any match of the pattern.
//
// Example:
//
//	re := linegrep.MustCompile(`^(cat|dog)$`)
//	re.MatchString("dog")  // true
//	re.MatchString("dogs") // false
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch(s)
}

// FindAllSpans returns every non-overlapping match of s as character index
// spans, sorted by start. It returns nil if there is no match.
//
// Example:
//
//	re := linegrep.MustCompile(`\d+`)
//	re.FindAllSpans("ab123cd456") // [{2 5} {7 10}]
func (r *Regex) FindAllSpans(s string) []scan.Span {
	return r.engine.FindAll(s)
}

// FindString returns the text of the leftmost match in s. It returns "" if
// there is no match, and also when the match itself is empty.
func (r *Regex) FindString(s string) string {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindStringIndex returns the byte offsets of the leftmost match in s as
// [start, end], or nil if there is no match.
func (r *Regex) FindStringIndex(s string) []int {
	all := r.FindAllStringIndex(s, 1)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// FindAllString returns the text of successive non-overlapping matches.
// If n >= 0, it returns at most n matches. It returns nil if there is no
// match.
func (r *Regex) FindAllString(s string, n int) []string {
	indices := r.FindAllStringIndex(s, n)
	if indices == nil {
		return nil
	}

	result := make([]string, len(indices))
	for i, loc := range indices {
		result[i] = s[loc[0]:loc[1]]
	}
	return result
}

// FindAllStringIndex returns the byte offsets of successive non-overlapping
// matches. If n >= 0, it returns at most n matches. It returns nil if there
// is no match.
//
// Example:
//
//	re := linegrep.MustCompile(`本`)
//	re.FindAllStringIndex("日本", -1) // [[3 6]]
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}

	spans := r.engine.FindAll(s)
	if len(spans) == 0 {
		return nil
	}
	if n > 0 && n < len(spans) {
		spans = spans[:n]
	}

	starts := conv.CharStarts(s)
	result := make([][]int, len(spans))
	for i, sp := range spans {
		start, end := conv.ByteSpan(starts, sp.Start, sp.End)
		result[i] = []int{start, end}
	}
	return result
}

// CountString returns the number of non-overlapping matches in s.
// If n > 0, counts at most n matches. If n <= 0, counts all matches.
func (r *Regex) CountString(s string, n int) int {
	count := len(r.engine.FindAll(s))
	if n > 0 && count > n {
		return n
	}
	return count
}

// Split slices s into substrings separated by the matches of the pattern.
// The count n determines the number of substrings to return:
//   - n > 0: at most n substrings; the last is the unsplit remainder
//   - n == 0: nil
//   - n < 0: all substrings
//
// Example:
//
//	re := linegrep.MustCompile(`,`)
//	re.Split("a,b,c", -1) // ["a" "b" "c"]
//	re.Split("a,b,c", 2)  // ["a" "b,c"]
func (r *Regex) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}

	indices := r.FindAllStringIndex(s, -1)
	if len(indices) == 0 {
		return []string{s}
	}

	result := make([]string, 0, len(indices)+1)
	lastEnd := 0
	for _, idx := range indices {
		if n > 0 && len(result) == n-1 {
			break
		}
		result = append(result, s[lastEnd:idx[0]])
		lastEnd = idx[1]
	}
	return append(result, s[lastEnd:])
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Strategy returns the execution strategy the engine selected for the
// pattern.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns the engine's execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// Engine returns the underlying compiled engine.
func (r *Regex) Engine() *meta.Engine {
	return r.engine
}
