package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-knight/internal/games/knight"
	"github.com/vovakirdan/tui-knight/internal/platform/tui"
)

// setupLogger builds the process logger from --log-file and --log-level.
// Without --log-file, logs go to fallback (io.Discard for the full-screen
// terminal commands). The returned func closes the log file.
func setupLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "knight",
	})
	knight.SetLogger(logger)
	tui.SetLogger(logger)
	return logger, closeFn, nil
}

// mustLogger is setupLogger for command handlers. The log file is closed
// by runCleanups.
func mustLogger(fallback io.Writer) *log.Logger {
	logger, closeFn, err := setupLogger(fallback)
	if err != nil {
		exitf("Error: %v", err)
	}
	onExit(closeFn)
	return logger
}

var (
	cleanups []func()
	osExit   = os.Exit
)

// onExit registers f to run when the command finishes or fails.
func onExit(f func()) {
	cleanups = append(cleanups, f)
}

// runCleanups runs the registered functions, newest first, once.
func runCleanups() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

// exitf prints a message to stderr, releases open resources and exits 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	runCleanups()
	osExit(1)
}
