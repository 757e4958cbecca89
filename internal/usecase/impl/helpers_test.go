package impl

import (
	"io"
	"log/slog"
)

// newTestLogger returns a logger that discards all output during tests.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}
