package raster

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; it is the default logger so the
// package is silent until a caller opts in via SetLogger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(nopHandler{}))
}

// SetLogger installs the logger used for cell-stash diagnostics. Safe
// to call concurrently with rasterization; takes effect for log
// statements issued after the swap.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	pkgLogger.Store(l)
}

// Logger returns the currently installed logger.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
