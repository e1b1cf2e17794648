package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/ggrep/internal/model"
)

// MatcherOptions selects how a pattern is interpreted.
type MatcherOptions struct {
	Pattern      string
	IgnoreCase   bool
	FixedStrings bool
	WordRegexp   bool
}

// Matcher finds the match spans of a pattern within a line.
// Implementations are immutable and safe to share across files.
type Matcher interface {
	// FindMatches returns non-overlapping spans in left-to-right order,
	// or nil when the line does not match.
	FindMatches(line string) []m.Span
}

// NewMatcher builds a Matcher from options. Invalid regular expressions
// are reported as *PatternError.
func NewMatcher(opts MatcherOptions) (Matcher, error) {
	if opts.FixedStrings && !opts.WordRegexp {
		return newFixedMatcher(opts.Pattern, opts.IgnoreCase), nil
	}

	expr := opts.Pattern
	if opts.FixedStrings {
		expr = regexp.QuoteMeta(expr)
	}

	if opts.WordRegexp {
		expr = `\b(?:` + expr + `)\b`
	}

	if opts.IgnoreCase {
		expr = `(?i)` + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: opts.Pattern, Err: err}
	}

	return &regexMatcher{re: re}, nil
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (r *regexMatcher) FindMatches(line string) []m.Span {
	return toSpans(r.re.FindAllStringIndex(line, -1))
}

// fixedMatcher scans for a literal substring. Case-insensitive search
// compares lower-cased copies of ASCII lines. Unicode folding can change
// byte lengths and shift offsets, so non-ASCII input goes through the
// quoted pattern compiled with (?i).
type fixedMatcher struct {
	needle   string
	fold     bool
	fallback *regexp.Regexp
}

func newFixedMatcher(pattern string, fold bool) *fixedMatcher {
	f := &fixedMatcher{needle: pattern, fold: fold}
	if fold {
		f.needle = strings.ToLower(pattern)
		f.fallback = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(pattern))
	}

	return f
}

func (f *fixedMatcher) FindMatches(line string) []m.Span {
	haystack := line
	if f.fold {
		if !isASCII(line) || !isASCII(f.needle) {
			return toSpans(f.fallback.FindAllStringIndex(line, -1))
		}

		haystack = strings.ToLower(line)
	}

	if f.needle == "" {
		return []m.Span{{Start: 0, End: 0}}
	}

	var spans []m.Span

	for offset := 0; offset <= len(haystack)-len(f.needle); {
		i := strings.Index(haystack[offset:], f.needle)
		if i < 0 {
			break
		}

		start := offset + i
		spans = append(spans, m.Span{Start: start, End: start + len(f.needle)})
		offset = start + len(f.needle)
	}

	return spans
}

func toSpans(indexes [][]int) []m.Span {
	if len(indexes) == 0 {
		return nil
	}

	spans := make([]m.Span, 0, len(indexes))
	for _, loc := range indexes {
		spans = append(spans, m.Span{Start: loc[0], End: loc[1]})
	}

	return spans
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
