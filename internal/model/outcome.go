package model

// Stats holds run-wide counters for the --stats summary.
type Stats struct {
	FilesSearched int
	FilesBinary   int
	FilesMatched  int
	MatchedLines  int
	Errors        int
}

// Outcome accumulates per-file results over a whole run.
type Outcome struct {
	Matched bool
	Stats   Stats
}

// Add folds a searched file's result into the outcome.
func (o *Outcome) Add(result FileResult) {
	o.Stats.FilesSearched++
	o.Stats.MatchedLines += result.MatchCount

	if result.HadAnyMatch {
		o.Matched = true
		o.Stats.FilesMatched++
	}
}

// SkipBinary records a file excluded by the binary sniff.
func (o *Outcome) SkipBinary() {
	o.Stats.FilesBinary++
}

// Fail records a recoverable per-file error.
func (o *Outcome) Fail() {
	o.Stats.Errors++
}
