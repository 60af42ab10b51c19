package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything, keeping test
// output free of controller log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
}
