package pic

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records. Enabled returns false so callers
// skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the rendering packages. By default
// no output is produced. Pass nil to restore the silent default.
//
// The engine logs at [slog.LevelWarn] for recoverable scene problems
// (unknown primitive types, malformed geometry) and [slog.LevelDebug] for
// render lifecycle events.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger. The engine and scene packages share it
// so one SetLogger call covers the whole rendering stack.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logger returns the active logger.
func logger() *slog.Logger {
	return loggerPtr.Load()
}
