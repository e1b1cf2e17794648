package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	m "github.com/mouse-blink/ggrep/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI renders results as plain lines on the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	out    *bufio.Writer
	config StartConfig
	paint  func(a ...interface{}) string
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = StartConfig{}
	for _, option := range options {
		option(&s.config)
	}

	s.out = bufio.NewWriter(s.cmd.OutOrStdout())
	s.paint = nil

	if s.config.highlight {
		s.paint = matchColor().SprintFunc()
	}

	return nil
}

// Flush writes buffered output to the command's writer.
func (s *SimpleUI) Flush() error {
	if s.out == nil {
		return nil
	}

	return s.out.Flush()
}

// Close flushes buffered output.
func (s *SimpleUI) Close() error {
	return s.Flush()
}

// DisplayMatch prints path:line:text, highlighting spans when enabled.
func (s *SimpleUI) DisplayMatch(path m.Path, record m.LineRecord) {
	text := record.Text
	if s.paint != nil {
		text = Highlight(text, record.Spans, s.paint)
	}

	s.printf("%s:%d:%s\n", path, record.LineNumber, text)
}

// DisplayCount prints "path: count".
func (s *SimpleUI) DisplayCount(path m.Path, count int) {
	s.printf("%s: %d\n", path, count)
}

// DisplayFile prints the path alone.
func (s *SimpleUI) DisplayFile(path m.Path) {
	s.printf("%s\n", path)
}

// DisplayStats prints the run summary table when stats were requested.
func (s *SimpleUI) DisplayStats(stats m.Stats) {
	if !s.config.stats {
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Stat", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.AppendBulk([][]string{
		{"Files searched", strconv.Itoa(stats.FilesSearched)},
		{"Files with matches", strconv.Itoa(stats.FilesMatched)},
		{"Matched lines", strconv.Itoa(stats.MatchedLines)},
		{"Binary files skipped", strconv.Itoa(stats.FilesBinary)},
		{"Errors", strconv.Itoa(stats.Errors)},
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	var w io.Writer = s.out
	if s.out == nil {
		w = s.cmd.OutOrStdout()
	}

	_, _ = fmt.Fprintf(w, format, args...)
}
