package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/gg"
)

// NewLogger returns a structured slog.Logger with the given level. The
// rasteriser logs through the same handler.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	gg.SetLogger(logger.With("component", "gg"))
	return logger
}
