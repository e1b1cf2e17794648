// Package cmd provides the root command and CLI setup for ggrep.
package cmd

import (
	"errors"
	"os"

	"github.com/mouse-blink/ggrep/internal/adapter"
	"github.com/mouse-blink/ggrep/internal/controller"
	"github.com/mouse-blink/ggrep/internal/domain"
	"github.com/mouse-blink/ggrep/internal/logger"
	m "github.com/mouse-blink/ggrep/internal/model"
	"github.com/spf13/cobra"
)

// Exit codes follow grep: 0 when a line matched, 1 when nothing matched,
// 2 for usage, pattern and path errors.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

// version is overridden at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var log *logger.ConsoleLogger
var workflow domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	ui = controller.NewSimpleUI(rootCmd)
	log = logger.NewConsoleLogger(os.Stderr, "ggrep", "warn")
	workflow = domain.NewWorkflow(fsAdapter, ui, log, colorTerminal())
}

var ignoreCaseFlag bool
var invertMatchFlag bool
var countFlag bool
var listFilesFlag bool
var fixedStringsFlag bool
var wordRegexpFlag bool
var colorFlag m.ColorMode
var maxDepthFlag int
var statsFlag bool
var debugFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ggrep [OPTIONS] <pattern> [prefix]",
		Short: "Recursive grep without shell globs",
		Long: `ggrep walks the directory tree under prefix (default ".") and prints
every line of every text file that matches pattern as path:line:text.

Binary files are skipped. The pattern is a regular expression (RE2
syntax) unless --fixed-strings is given.

Exit status is 0 if a line matched, 1 if no line matched and 2 if an
error occurred.`,
		Version:       version,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			if debugFlag && log != nil {
				log.SetLevel("debug")
			}

			outcome, err := workflow.Search(buildConfig(args))
			if err != nil {
				return err
			}

			if !outcome.Matched {
				return domain.ErrNoMatch
			}

			return nil
		},
	}

	colorFlag = m.ColorAuto

	cmd.Flags().BoolVarP(&ignoreCaseFlag, "ignore-case", "i", false, "case-insensitive match")
	cmd.Flags().BoolVarP(&invertMatchFlag, "invert-match", "v", false, "select non-matching lines")
	cmd.Flags().BoolVarP(&countFlag, "count", "c", false, "print a count of matching lines per file")
	cmd.Flags().BoolVarP(&listFilesFlag, "list-files", "l", false, "print only names of files with matches (overrides --count)")
	cmd.Flags().BoolVarP(&fixedStringsFlag, "fixed-strings", "F", false, "treat pattern as a literal string")
	cmd.Flags().BoolVarP(&wordRegexpFlag, "word-regexp", "w", false, "match whole words only")
	cmd.Flags().Var(&colorFlag, "color", "highlight matches: auto, always or never")
	cmd.Flags().IntVar(&maxDepthFlag, "max-depth", 0, "limit directory levels searched; 1 = files directly in prefix (0 = unlimited)")
	cmd.Flags().BoolVar(&statsFlag, "stats", false, "print search statistics after the results")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "log skipped files and other diagnostics to stderr")
	cmd.Flags().BoolP("version", "V", false, "print version information and exit")

	return cmd
}

func buildConfig(args []string) m.SearchConfig {
	prefix := m.Path(".")
	if len(args) > 1 {
		prefix = m.Path(args[1])
	}

	return m.SearchConfig{
		Pattern:      args[0],
		Prefix:       prefix,
		IgnoreCase:   ignoreCaseFlag,
		InvertMatch:  invertMatchFlag,
		Count:        countFlag,
		ListFiles:    listFilesFlag,
		FixedStrings: fixedStringsFlag,
		WordRegexp:   wordRegexpFlag,
		Color:        colorFlag,
		MaxDepth:     maxDepthFlag,
		Stats:        statsFlag,
	}
}

// colorTerminal reports whether --color=auto should highlight: stdout must
// be a terminal and NO_COLOR must be unset.
func colorTerminal() bool {
	return adapter.IsTTY(os.Stdout) && os.Getenv("NO_COLOR") == ""
}

// Execute runs the root command and exits with the grep-style status.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(exitCode(rootCmd.Execute(), log))
}

func exitCode(err error, errLog logger.Logger) int {
	switch {
	case err == nil:
		return exitMatch
	case errors.Is(err, domain.ErrNoMatch):
		return exitNoMatch
	default:
		if errLog != nil {
			errLog.LogError("%v", err)
		}

		return exitError
	}
}
