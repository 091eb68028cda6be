// Package cli parses the command line of pathlab.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/internal/config"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements error.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the effective configuration of one run: the environment
// configuration with flags applied on top.
type Options struct {
	Paths     []string
	Output    string
	Selection dijkstra.Selection
	Trace     bool
	Config    config.Config
}

// Parse processes args with defaults taken from cfg. It returns the options,
// whether the program should exit cleanly (help or no scenario given), or an
// *ExitError for bad usage.
func Parse(args []string, output io.Writer, cfg config.Config) (*Options, bool, error) {
	fs := flag.NewFlagSet("pathlab", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
pathlab - replay graph scenarios and report shortest paths.

Usage:
  pathlab [options] SCENARIO [SCENARIO...]

Arguments:
  SCENARIO
    Path to a .hcl file or a directory containing .hcl files.

Options:
`)
		fs.PrintDefaults()
	}

	outputFlag := fs.String("format", cfg.Output, "Report format. Options: 'text' or 'json'.")
	logFormatFlag := fs.String("log-format", cfg.Logging.Format, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := fs.String("log-level", cfg.Logging.Level, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	selectionFlag := fs.String("selection", cfg.Engine.Selection, "Minimum selection strategy. Options: 'linear' or 'heap'.")
	traceFlag := fs.Bool("trace", cfg.Trace.Enabled, "Export trace spans to stderr.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, true, nil
	}

	cfg.Output = strings.ToLower(*outputFlag)
	cfg.Logging.Format = strings.ToLower(*logFormatFlag)
	cfg.Logging.Level = strings.ToLower(*logLevelFlag)
	cfg.Engine.Selection = strings.ToLower(*selectionFlag)
	cfg.Trace.Enabled = *traceFlag
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	sel, err := dijkstra.ParseSelection(cfg.Engine.Selection)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &Options{
		Paths:     fs.Args(),
		Output:    cfg.Output,
		Selection: sel,
		Trace:     cfg.Trace.Enabled,
		Config:    cfg,
	}, false, nil
}
