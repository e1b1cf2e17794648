package domain

import (
	"github.com/mouse-blink/ggrep/internal/controller"
	m "github.com/mouse-blink/ggrep/internal/model"
)

// FileReporter renders one file's records under an output mode.
type FileReporter struct {
	ui   controller.UI
	mode m.OutputMode
}

// NewFileReporter creates a FileReporter writing to ui.
func NewFileReporter(ui controller.UI, mode m.OutputMode) *FileReporter {
	return &FileReporter{ui: ui, mode: mode}
}

// Report consumes records for path. In list mode it stops at the first
// matching line, so MatchCount is at most 1. Nothing is printed for the
// count or list modes when reading fails; lines already printed in normal
// mode stay printed.
func (r *FileReporter) Report(path m.Path, records RecordSource) (m.FileResult, error) {
	result := m.FileResult{Path: path}

	for records.Next() {
		record := records.Record()
		if !record.IsMatch {
			continue
		}

		result.MatchCount++
		result.HadAnyMatch = true

		switch r.mode {
		case m.ModeList:
			r.ui.DisplayFile(path)
			return result, nil
		case m.ModeNormal:
			r.ui.DisplayMatch(path, record)
		case m.ModeCount:
		}
	}

	if err := records.Err(); err != nil {
		return result, err
	}

	if r.mode == m.ModeCount {
		r.ui.DisplayCount(path, result.MatchCount)
	}

	return result, nil
}
