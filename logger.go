package scanraster

import (
	"log/slog"

	"github.com/scanraster/scanraster/internal/raster"
)

// SetLogger configures the logger used by scanraster and its
// internal raster package. By default, scanraster produces no log
// output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by scanraster:
//   - [slog.LevelDebug]: cell-stash growth events.
//   - [slog.LevelWarn]: cell stash approaching its addressable limit.
//
// Example:
//
//	scanraster.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	raster.SetLogger(l)
}

// Logger returns the current logger used by scanraster.
func Logger() *slog.Logger {
	return raster.Logger()
}
