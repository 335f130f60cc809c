package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewWritesToRotatedFile(t *testing.T) {
	dbpath := t.TempDir()
	logger := New(dbpath)
	logger.Warn("push recorded with warning", "name", "groceries")

	data, err := os.ReadFile(filepath.Join(dbpath, ".frame", logFileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected log file to contain the warning entry")
	}
}

func TestDiscardDoesNotPanic(t *testing.T) {
	Discard().Warn("dropped", "reason", "no database open yet")
}
