package controller

import (
	"strings"

	"github.com/fatih/color"

	m "github.com/mouse-blink/ggrep/internal/model"
)

// matchColor is the red bold used for match spans.
func matchColor() *color.Color {
	c := color.New(color.FgRed, color.Bold)
	// The caller decided colour is wanted; don't let fatih/color's own
	// stdout detection override it.
	c.EnableColor()

	return c
}

// Highlight copies text into a new string, wrapping every non-empty span
// with escape sequences from paint. Spans must be ordered and
// non-overlapping; out-of-range spans are clamped.
func Highlight(text string, spans []m.Span, paint func(a ...interface{}) string) string {
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder

	b.Grow(len(text) + len(spans)*16)

	last := 0

	for _, span := range spans {
		clamped := m.Span{Start: clamp(span.Start, last, len(text)), End: clamp(span.End, last, len(text))}
		if clamped.Empty() {
			continue
		}

		b.WriteString(text[last:clamped.Start])
		b.WriteString(paint(text[clamped.Start:clamped.End]))
		last = clamped.End
	}

	b.WriteString(text[last:])

	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
