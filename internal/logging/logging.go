// Package logging configures frame's diagnostic log: a rotated JSON
// log file capturing non-fatal warnings (index entries missing on delete,
// push index/history failures) that would otherwise only flash past on
// stderr. User-facing errors are never routed through here — only this
// package's warning trail, for later auditing.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "frame.log"

// New returns a logger writing to dbpath/.frame/frame.log, rotated at 5MB
// with 3 backups kept for 28 days.
func New(dbpath string) *slog.Logger {
	sink := &lumberjack.Logger{
		Filename:   filepath.Join(dbpath, ".frame", logFileName),
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
	}
	return slog.New(slog.NewJSONHandler(sink, nil))
}

// Discard returns a logger that drops everything, used when no database
// directory is available yet to host the log file (e.g. before init).
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
