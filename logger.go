package libpillowfight

import (
	"log/slog"

	"github.com/shalevy1/libpillowfight/internal/logging"
)

// SetLogger configures the logger used by every package of this module.
// By default nothing is logged. Pass nil to restore silence.
//
// Log levels used:
//   - [slog.LevelDebug]: per-call diagnostics (convolution sizes, repeated Free)
//   - [slog.LevelWarn]: rejected foreign pixel buffers
//
// Example:
//
//	libpillowfight.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
