package model

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ColorMode controls when matches are highlighted with terminal escapes.
type ColorMode string

const (
	// ColorAuto highlights only when the output is an interactive terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways highlights regardless of the output destination.
	ColorAlways ColorMode = "always"
	// ColorNever never emits escape sequences.
	ColorNever ColorMode = "never"
)

var _ pflag.Value = (*ColorMode)(nil)

// String implements pflag.Value.
func (c *ColorMode) String() string {
	if *c == "" {
		return string(ColorAuto)
	}

	return string(*c)
}

// Set implements pflag.Value.
func (c *ColorMode) Set(value string) error {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		*c = mode
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", value)
	}
}

// Type implements pflag.Value.
func (c *ColorMode) Type() string {
	return "when"
}

// OutputMode selects how a file's matching lines are reported.
type OutputMode int

// Available OutputMode values.
const (
	ModeNormal OutputMode = iota
	ModeCount
	ModeList
)

// SearchConfig is built once from the command line and is read-only afterwards.
type SearchConfig struct {
	Pattern      string
	Prefix       Path
	IgnoreCase   bool
	InvertMatch  bool
	Count        bool
	ListFiles    bool
	FixedStrings bool
	WordRegexp   bool
	Color        ColorMode
	// MaxDepth limits how many directory levels are searched: 1 covers only
	// files directly in Prefix (0 = unlimited).
	MaxDepth int
	Stats    bool
}

// OutputMode resolves the count/list toggles. List-files wins when both are set.
func (c SearchConfig) OutputMode() OutputMode {
	switch {
	case c.ListFiles:
		return ModeList
	case c.Count:
		return ModeCount
	default:
		return ModeNormal
	}
}
