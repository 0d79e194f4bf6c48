package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// captureExit replaces os.Exit for the duration of the test.
func captureExit(t *testing.T) *int {
	t.Helper()
	code := -1
	osExit = func(c int) { code = c }
	t.Cleanup(func() {
		osExit = os.Exit
		cleanups = nil
	})
	return &code
}

func TestExitfRunsCleanups(t *testing.T) {
	code := captureExit(t)

	var order []int
	onExit(func() { order = append(order, 1) })
	onExit(func() { order = append(order, 2) })

	exitf("Error: %v", "boom")

	if *code != 1 {
		t.Errorf("exit code = %d, expected 1", *code)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("cleanup order = %v, expected [2 1]", order)
	}
	if len(cleanups) != 0 {
		t.Error("cleanups should be cleared after running")
	}
}

func TestMustLoggerClosesLogFileOnExit(t *testing.T) {
	code := captureExit(t)
	path := filepath.Join(t.TempDir(), "knight.log")
	flagLogFile, flagLogLevel = path, "debug"
	t.Cleanup(func() { flagLogFile, flagLogLevel = "", "info" })

	logger := mustLogger(io.Discard)
	logger.Info("hello")
	if len(cleanups) != 1 {
		t.Fatalf("registered %d cleanups, expected 1", len(cleanups))
	}

	exitf("Error: failed")
	if *code != 1 {
		t.Errorf("exit code = %d, expected 1", *code)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file should contain the message")
	}
}

func TestSetupLoggerBadLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, _, err := setupLogger(io.Discard); err == nil {
		t.Error("setupLogger() should reject an unknown level")
	}
}
