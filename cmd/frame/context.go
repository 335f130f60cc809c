// Package main implements the frame CLI: a thin cobra front-end over
// internal/engine's filesystem-backed hierarchical note store.
package main

import (
	"log/slog"

	"github.com/coldforge/frame/internal/engine"
)

// appContext consolidates the runtime state one cobra command needs:
// the open database handle, its diagnostic logger, and the global flags
// that shape output. Grounded on the teacher's CommandContext pattern,
// narrowed to frame's much smaller surface.
type appContext struct {
	DBPath  string
	JSONOut bool
	NoColor bool
	Pretty  bool
	DB      *engine.Database
	Log     *slog.Logger
}

var app appContext
