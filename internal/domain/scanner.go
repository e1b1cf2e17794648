package domain

import (
	"bufio"
	"errors"
	"io"
	"strings"

	m "github.com/mouse-blink/ggrep/internal/model"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewSampleReader buffers r so the first SniffSize raw bytes can be
// inspected with Peek before any decoding happens.
func NewSampleReader(r io.Reader) *bufio.Reader {
	return bufio.NewReaderSize(r, SniffSize)
}

// NewDecodingReader wraps r so a leading UTF-8 byte-order mark is dropped
// and invalid UTF-8 is replaced with U+FFFD.
func NewDecodingReader(r io.Reader) *bufio.Reader {
	return bufio.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
}

// RecordSource yields LineRecords one at a time, bufio.Scanner style.
type RecordSource interface {
	Next() bool
	Record() m.LineRecord
	Err() error
}

// LineScanner reads newline-delimited lines on demand and classifies each
// one with a Matcher. A final line without a trailing newline is still
// returned; a trailing carriage return is dropped.
type LineScanner struct {
	reader  *bufio.Reader
	matcher Matcher
	invert  bool

	lineNumber int
	record     m.LineRecord
	err        error
	done       bool
}

// NewLineScanner creates a LineScanner over r.
func NewLineScanner(r *bufio.Reader, matcher Matcher, invert bool) *LineScanner {
	return &LineScanner{reader: r, matcher: matcher, invert: invert}
}

// Next advances to the next line. It returns false at end of input or on
// a read error, which is then available from Err.
func (s *LineScanner) Next() bool {
	if s.done {
		return false
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		s.done = true

		if !errors.Is(err, io.EOF) {
			s.err = err
			return false
		}

		if line == "" {
			return false
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	s.lineNumber++
	spans := s.matcher.FindMatches(line)
	s.record = m.LineRecord{
		LineNumber: s.lineNumber,
		Text:       line,
		Spans:      spans,
		IsMatch:    (len(spans) > 0) != s.invert,
	}

	return true
}

// Record returns the current line.
func (s *LineScanner) Record() m.LineRecord {
	return s.record
}

// Err returns the first non-EOF read error.
func (s *LineScanner) Err() error {
	return s.err
}
