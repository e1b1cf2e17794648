// Package domain implements the search engine: pattern matching, binary
// detection, line scanning, per-file reporting and tree traversal.
package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mouse-blink/ggrep/internal/adapter"
	"github.com/mouse-blink/ggrep/internal/controller"
	"github.com/mouse-blink/ggrep/internal/logger"
	m "github.com/mouse-blink/ggrep/internal/model"
)

// Workflow runs a search described by a SearchConfig.
type Workflow interface {
	// Search walks cfg.Prefix and reports matches through the UI. The
	// returned outcome is valid even when err is non-nil. err is non-nil
	// only for fatal conditions: a bad pattern or an unusable prefix.
	Search(cfg m.SearchConfig) (m.Outcome, error)
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	log       logger.Logger
	terminal  bool
}

// NewWorkflow creates a new Workflow. terminal reports whether the UI's
// destination is an interactive terminal, used by ColorAuto.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI, log logger.Logger, terminal bool) Workflow {
	if log == nil {
		log = logger.NopLogger{}
	}

	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		log:       log,
		terminal:  terminal,
	}
}

// Colorize resolves a colour mode against the output destination.
func Colorize(mode m.ColorMode, terminal bool) bool {
	switch mode {
	case m.ColorAlways:
		return true
	case m.ColorNever:
		return false
	default:
		return terminal
	}
}

func (w *workflow) Search(cfg m.SearchConfig) (m.Outcome, error) {
	var outcome m.Outcome

	matcher, err := NewMatcher(MatcherOptions{
		Pattern:      cfg.Pattern,
		IgnoreCase:   cfg.IgnoreCase,
		FixedStrings: cfg.FixedStrings,
		WordRegexp:   cfg.WordRegexp,
	})
	if err != nil {
		return outcome, err
	}

	root := cfg.Prefix
	if root == "" {
		root = "."
	}

	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		return outcome, fmt.Errorf("%w: %w", ErrInvalidPrefix, err)
	}

	if !info.IsDir() {
		return outcome, fmt.Errorf("%w: %s is not a directory", ErrInvalidPrefix, root)
	}

	err = w.ui.Start(
		controller.WithHighlight(Colorize(cfg.Color, w.terminal)),
		controller.WithStats(cfg.Stats),
	)
	if err != nil {
		return outcome, err
	}

	reporter := NewFileReporter(w.ui, cfg.OutputMode())
	rootClean := filepath.Clean(string(root))

	walkErr := w.fsAdapter.Walk(root, cfg.MaxDepth, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if filepath.Clean(path) == rootClean {
				return err
			}

			w.warn("%s: %v", path, err)
			outcome.Fail()

			return nil
		}

		if info.IsDir() {
			return nil
		}

		if !info.Mode().IsRegular() {
			w.log.LogDebug("skipping %s: not a regular file", path)
			return nil
		}

		w.searchFile(m.Path(path), matcher, cfg.InvertMatch, reporter, &outcome)

		return nil
	})

	if walkErr != nil {
		_ = w.ui.Close()

		return outcome, fmt.Errorf("%w: %w", ErrInvalidPrefix, walkErr)
	}

	w.ui.DisplayStats(outcome.Stats)

	return outcome, w.ui.Close()
}

// searchFile sniffs, scans and reports a single file. Failures are logged
// and leave the outcome's match state untouched.
func (w *workflow) searchFile(path m.Path, matcher Matcher, invert bool, reporter *FileReporter, outcome *m.Outcome) {
	rc, err := w.fsAdapter.Open(path)
	if err != nil {
		w.warn("%s: %v", path, err)
		outcome.Fail()

		return
	}

	defer func() {
		_ = rc.Close()
	}()

	raw := NewSampleReader(rc)

	sample, err := raw.Peek(SniffSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		w.warn("%s: %v", path, err)
		outcome.Fail()

		return
	}

	if LooksBinary(sample) {
		w.log.LogDebug("skipping %s: binary file", path)
		outcome.SkipBinary()

		return
	}

	result, err := reporter.Report(path, NewLineScanner(NewDecodingReader(raw), matcher, invert))
	if err != nil {
		w.warn("%s: %v", path, err)
		outcome.Fail()

		return
	}

	outcome.Add(result)
}

// warn flushes pending results first so warnings on stderr appear after
// the lines found before them.
func (w *workflow) warn(format string, args ...interface{}) {
	_ = w.ui.Flush()
	w.log.LogWarn(format, args...)
}
