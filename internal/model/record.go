package model

// Span is a half-open byte range [Start, End) of one match within a line.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// LineRecord describes a single scanned line.
type LineRecord struct {
	LineNumber int // 1-based
	Text       string
	Spans      []Span
	// IsMatch is (len(Spans) > 0) XOR invert-match.
	IsMatch bool
}

// FileResult aggregates the outcome of reporting one file.
type FileResult struct {
	Path        Path
	MatchCount  int
	HadAnyMatch bool
}
