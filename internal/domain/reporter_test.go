package domain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mouse-blink/ggrep/internal/controller"
	m "github.com/mouse-blink/ggrep/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	records  []m.LineRecord
	err      error
	consumed int
}

func (s *sliceSource) Next() bool {
	if s.consumed >= len(s.records) {
		return false
	}

	s.consumed++

	return true
}

func (s *sliceSource) Record() m.LineRecord {
	return s.records[s.consumed-1]
}

func (s *sliceSource) Err() error {
	if s.consumed >= len(s.records) {
		return s.err
	}

	return nil
}

func sampleRecords() []m.LineRecord {
	return []m.LineRecord{
		{LineNumber: 1, Text: "foo", Spans: []m.Span{{Start: 0, End: 3}}, IsMatch: true},
		{LineNumber: 2, Text: "bar", IsMatch: false},
		{LineNumber: 3, Text: "foobar", Spans: []m.Span{{Start: 0, End: 3}}, IsMatch: true},
	}
}

func newReporterUI(t *testing.T, options ...controller.StartOption) (controller.UI, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := controller.NewSimpleUI(cmd)
	require.NoError(t, ui.Start(options...))

	return ui, &buf
}

func TestFileReporter_NormalMode(t *testing.T) {
	ui, buf := newReporterUI(t)
	reporter := NewFileReporter(ui, m.ModeNormal)

	result, err := reporter.Report("a.txt", &sliceSource{records: sampleRecords()})
	require.NoError(t, err)
	require.NoError(t, ui.Close())

	assert.Equal(t, m.FileResult{Path: "a.txt", MatchCount: 2, HadAnyMatch: true}, result)
	assert.Equal(t, "a.txt:1:foo\na.txt:3:foobar\n", buf.String())
}

func TestFileReporter_CountMode(t *testing.T) {
	ui, buf := newReporterUI(t)
	reporter := NewFileReporter(ui, m.ModeCount)

	result, err := reporter.Report("a.txt", &sliceSource{records: sampleRecords()})
	require.NoError(t, err)

	empty, err := reporter.Report("b.txt", &sliceSource{})
	require.NoError(t, err)
	require.NoError(t, ui.Close())

	assert.Equal(t, 2, result.MatchCount)
	assert.False(t, empty.HadAnyMatch)
	assert.Equal(t, "a.txt: 2\nb.txt: 0\n", buf.String())
}

func TestFileReporter_ListModeStopsAtFirstMatch(t *testing.T) {
	ui, buf := newReporterUI(t)
	reporter := NewFileReporter(ui, m.ModeList)
	source := &sliceSource{records: sampleRecords()}

	result, err := reporter.Report("a.txt", source)
	require.NoError(t, err)
	require.NoError(t, ui.Close())

	assert.Equal(t, "a.txt\n", buf.String())
	assert.Equal(t, 1, source.consumed)
	assert.True(t, result.HadAnyMatch)
}

func TestFileReporter_ListModeWithoutMatch(t *testing.T) {
	ui, buf := newReporterUI(t)
	reporter := NewFileReporter(ui, m.ModeList)

	result, err := reporter.Report("b.txt", &sliceSource{records: []m.LineRecord{{LineNumber: 1, Text: "baz"}}})
	require.NoError(t, err)
	require.NoError(t, ui.Close())

	assert.Empty(t, buf.String())
	assert.False(t, result.HadAnyMatch)
}

func TestFileReporter_HighlightsSpans(t *testing.T) {
	ui, buf := newReporterUI(t, controller.WithHighlight(true))
	reporter := NewFileReporter(ui, m.ModeNormal)

	_, err := reporter.Report("a.txt", &sliceSource{records: sampleRecords()[:1]})
	require.NoError(t, err)
	require.NoError(t, ui.Close())

	assert.Contains(t, buf.String(), "\x1b[")
	assert.NotEqual(t, "a.txt:1:foo\n", buf.String())
}

func TestFileReporter_InvertedLinesAreNotHighlighted(t *testing.T) {
	matcher, err := NewMatcher(MatcherOptions{Pattern: "foo"})
	require.NoError(t, err)

	ui, buf := newReporterUI(t, controller.WithHighlight(true))
	reporter := NewFileReporter(ui, m.ModeNormal)

	scanner := NewLineScanner(NewDecodingReader(bytes.NewBufferString("foo\nbar\n")), matcher, true)

	result, err := reporter.Report("a.txt", scanner)
	require.NoError(t, err)
	require.NoError(t, ui.Close())

	assert.Equal(t, 1, result.MatchCount)
	assert.Equal(t, "a.txt:2:bar\n", buf.String())
}

func TestFileReporter_ReadErrorSuppressesCount(t *testing.T) {
	ui, buf := newReporterUI(t)
	reporter := NewFileReporter(ui, m.ModeCount)
	boom := errors.New("boom")

	_, err := reporter.Report("a.txt", &sliceSource{records: sampleRecords(), err: boom})
	require.ErrorIs(t, err, boom)
	require.NoError(t, ui.Close())

	assert.Empty(t, buf.String())
}
