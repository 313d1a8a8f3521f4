package vbuf

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Its Enabled reports false, so iterators
// built without a logger never format the lock and clamp attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is read by NewIterator when no WithLogger option was given.
// SetLogger may swap it while other goroutines build iterators.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package logger used by every iterator that was
// not given its own logger through WithLogger. By default vbuf produces no
// log output. Pass nil to restore the silent default.
//
// Log levels used by vbuf:
//   - [slog.LevelDebug]: lock and unlock of vertex buffers, accessor layout
//   - [slog.LevelWarn]: clamped bulk writes, cursors advanced past the last vertex
//
// Example:
//
//	vbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger new iterators fall back to. It is safe for
// concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
