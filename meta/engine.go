package meta

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/coregx/linegrep/internal/conv"
	"github.com/coregx/linegrep/literal"
	"github.com/coregx/linegrep/prefilter"
	"github.com/coregx/linegrep/scan"
	"github.com/coregx/linegrep/syntax"
)

// Engine is a compiled pattern together with its execution strategy.
//
// The Engine:
//  1. Compiles the pattern into its node sequence
//  2. Extracts the literal prefixes every match starts with
//  3. Builds a prefilter (if literals are available)
//  4. Selects a strategy and runs searches with it
//
// Thread safety: an Engine is immutable after compilation apart from its
// atomic statistics. Each search builds its own matcher and tracker, so
// multiple goroutines can search with the same Engine concurrently.
//
// Example:
//
//	engine, err := meta.Compile(`(foo|bar)\d+`)
//	if err != nil {
//	    return err
//	}
//	spans := engine.FindAll("test foo123 end") // [{5 11}]
type Engine struct {
	// IMPORTANT: stats MUST be first field for proper 8-byte alignment on 32-bit platforms.
	stats Stats

	pattern   string
	nodes     []syntax.Node
	prefixes  *literal.Seq
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// ScanSearches counts searches run by the plain matcher.
	ScanSearches uint64

	// PrefilterSearches counts matcher searches guided by a prefilter.
	PrefilterSearches uint64

	// LiteralSearches counts searches answered by the prefilter alone.
	LiteralSearches uint64

	// PrefilterCandidates counts candidate positions reported by prefilters.
	PrefilterCandidates uint64

	// PrefilterRetired counts searches in which the prefilter was abandoned
	// due to a high false positive rate.
	PrefilterRetired uint64
}

// Compile compiles a pattern with the default configuration.
//
// Compilation errors are returned as *syntax.Error.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableLiteralEngine = false
//	engine, err := meta.CompileWithConfig("cat|dog", config)
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	nodes, err := syntax.CompileWithOptions(pattern, &syntax.ParserOptions{
		MaxDepth: config.MaxNestingDepth,
	})
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pattern: pattern,
		nodes:   nodes,
		config:  config,
	}

	if config.EnablePrefilter {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: literal.DefaultConfig().MaxLiteralLen,
		})
		e.prefixes = extractor.ExtractPrefixes(nodes)
		e.prefilter = prefilter.NewBuilder(e.prefixes).Build()
	}
	e.strategy = selectStrategy(e.prefixes, e.prefilter, config)
	if e.strategy == UseScan {
		e.prefilter = nil
	}
	return e, nil
}

// FindAll returns every non-overlapping match span of input, in character
// indices, sorted by start.
func (e *Engine) FindAll(input string) []scan.Span {
	// Byte-level literal search cannot see the replacement characters that
	// invalid UTF-8 decodes to.
	if e.strategy == UseScan || !utf8.ValidString(input) {
		atomic.AddUint64(&e.stats.ScanSearches, 1)
		return scan.NewMatcher(e.nodes, input).Matches()
	}
	if e.strategy == UseLiteral {
		return e.findLiteral(input)
	}
	return e.findPrefilter(input)
}

// IsMatch reports whether input contains any match.
func (e *Engine) IsMatch(input string) bool {
	if e.strategy == UseLiteral && utf8.ValidString(input) {
		atomic.AddUint64(&e.stats.LiteralSearches, 1)
		return e.prefilter.Find([]byte(input), 0) >= 0
	}
	return len(e.FindAll(input)) > 0
}

func (e *Engine) findPrefilter(input string) []scan.Span {
	atomic.AddUint64(&e.stats.PrefilterSearches, 1)

	tracker := prefilter.NewTracker(e.prefilter)
	spans := scan.NewMatcher(e.nodes, input, scan.WithTracker(tracker)).Matches()

	candidates, _, active := tracker.Stats()
	atomic.AddUint64(&e.stats.PrefilterCandidates, candidates)
	if !active {
		atomic.AddUint64(&e.stats.PrefilterRetired, 1)
	}
	return spans
}

// findLiteral reports literal occurrences directly. Every literal is
// non-empty, so each step moves forward.
func (e *Engine) findLiteral(input string) []scan.Span {
	atomic.AddUint64(&e.stats.LiteralSearches, 1)

	haystack := []byte(input)
	var (
		starts []int
		spans  []scan.Span
		found  uint64
	)
	for at := 0; at < len(haystack); {
		start, end := e.prefilter.FindMatch(haystack, at)
		if start < 0 {
			break
		}
		if starts == nil {
			starts = conv.CharStarts(input)
		}
		spans = append(spans, scan.Span{
			Start: conv.CharIndex(starts, start),
			End:   conv.CharIndex(starts, end),
		})
		found++
		at = end
	}
	atomic.AddUint64(&e.stats.PrefilterCandidates, found)
	return spans
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Nodes returns the compiled top-level node sequence. The result is shared
// and must not be modified.
func (e *Engine) Nodes() []syntax.Node {
	return e.nodes
}

// Prefixes returns the literal prefixes every match starts with. The
// result is empty when prefiltering is disabled or no prefixes exist.
func (e *Engine) Prefixes() *literal.Seq {
	if e.prefixes == nil {
		return literal.NewSeq()
	}
	return e.prefixes
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		ScanSearches:        atomic.LoadUint64(&e.stats.ScanSearches),
		PrefilterSearches:   atomic.LoadUint64(&e.stats.PrefilterSearches),
		LiteralSearches:     atomic.LoadUint64(&e.stats.LiteralSearches),
		PrefilterCandidates: atomic.LoadUint64(&e.stats.PrefilterCandidates),
		PrefilterRetired:    atomic.LoadUint64(&e.stats.PrefilterRetired),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.ScanSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterSearches, 0)
	atomic.StoreUint64(&e.stats.LiteralSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterCandidates, 0)
	atomic.StoreUint64(&e.stats.PrefilterRetired, 0)
}
