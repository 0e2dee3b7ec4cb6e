// SPDX-License-Identifier: Unlicense OR MIT

package filter

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by filters. By default nothing is
// logged. Passing nil restores the default. SetLogger is safe for
// concurrent use.
//
// Filters log lifecycle events at [slog.LevelDebug] and caller
// mistakes, such as a second Init or an unresolved attribute, at
// [slog.LevelWarn].
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current filter logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
