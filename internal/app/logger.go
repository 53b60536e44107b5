package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/trfilter/internal/config"
)

// levels maps validated level names to slog levels.
var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds an isolated logger for one run. It never touches the
// global logger. Every record carries the run id.
func newLogger(s config.LogSettings, runID string, errW io.Writer) *slog.Logger {
	level, ok := levels[s.Level]
	if !ok {
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if s.Format == "json" {
		handler = slog.NewJSONHandler(errW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(errW, handlerOpts)
	}

	return slog.New(handler).With("run_id", runID)
}
