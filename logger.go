package fxkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can race with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for fxkit and all its sub-packages.
// By default fxkit produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by fxkit:
//   - [slog.LevelDebug]: per-layer and per-file diagnostics
//   - [slog.LevelInfo]: files written, batch summaries
//   - [slog.LevelWarn]: a file in a batch was skipped because it failed
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by fxkit.
// Sub-packages (effect, sheet, unfog, sfx, inventory) call this to share
// the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
