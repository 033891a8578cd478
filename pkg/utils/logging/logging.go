// Package logging provides the process-wide structured logger and
// context helpers. Handlers are built by pkg/cli/config.Logger; code
// elsewhere only reads via Default or From.
package logging

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/m-mizutani/clog"
)

type ctxLoggerKey struct{}

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(slog.New(clog.New(
		clog.WithWriter(os.Stderr),
		clog.WithLevel(slog.LevelInfo),
	)))
}

// Default returns the process-wide logger
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
}

// With returns a context carrying the given logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger carried by the context, or the default logger
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return Default()
}
