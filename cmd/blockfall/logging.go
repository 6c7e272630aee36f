package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// newLogger builds the CLI logger. The TUI owns the terminal, so logs go to
// a file or nowhere.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           lvl,
	})
	return l, nil
}

func setupLogging(_ *cobra.Command, _ []string) error {
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	l, err := newLogger(w, flagLogLevel)
	if err != nil {
		return err
	}
	logger = l
	tetris.SetLogger(logger)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) {
	tetris.SetLogger(nil)
	logger = log.New(io.Discard)
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
