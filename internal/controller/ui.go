// Package controller provides output adapters for displaying search results.
package controller

import (
	m "github.com/mouse-blink/ggrep/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	highlight bool
	stats     bool
}

// WithHighlight enables colour escapes around match spans.
func WithHighlight(enabled bool) StartOption {
	return func(c *StartConfig) {
		c.highlight = enabled
	}
}

// WithStats enables the summary table printed by DisplayStats.
func WithStats(enabled bool) StartOption {
	return func(c *StartConfig) {
		c.stats = enabled
	}
}

// UI defines the interface for rendering search results.
// Implementations buffer output between Start and Close; Flush writes out
// what is pending so diagnostics on another stream stay in order.
type UI interface {
	Start(options ...StartOption) error
	Flush() error
	Close() error
	DisplayMatch(path m.Path, record m.LineRecord)
	DisplayCount(path m.Path, count int)
	DisplayFile(path m.Path)
	DisplayStats(stats m.Stats)
}
