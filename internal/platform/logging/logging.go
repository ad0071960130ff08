// Package logging builds the slog loggers used by the navigator and its host
// and carries them through context.Context.
//
// The host builds one root logger:
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, w)
//
// Each navigation operation derives its own logger tagged with the operation
// name and an op_id, so the steps, hooks and transitions of one Open or Close
// can be correlated:
//
//	ctx, logger := logging.WithOperation(ctx, root, "Navigator.Open")
//	logger.ErrorContext(ctx, "transition failed",
//	    slog.String("from", fromID),
//	    slog.String("to", toID),
//	    slog.Any("error", err),
//	)
//
// Code further down the call chain picks the logger up with FromContext.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type contextKey struct{}

// Attribute keys shared by every operation-scoped logger.
const (
	KeyOperation = "operation"
	KeyOpID      = "op_id"
)

// New creates the root logger. level is one of debug, info, warn or error
// (case-insensitive, anything else means info). format "text" selects the
// text handler, anything else JSON. Debug output includes source locations.
// Sensitive attributes are redacted, see SensitiveFields.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	return slog.New(newHandler(format, w, opts))
}

func newHandler(format string, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// WithOperation derives a logger for a single operation from base, tagged
// with op and a fresh op_id, and stores it in the returned context.
func WithOperation(ctx context.Context, base *slog.Logger, op string) (context.Context, *slog.Logger) {
	logger := base.With(
		slog.String(KeyOperation, op),
		slog.String(KeyOpID, uuid.NewString()),
	)
	return WithLogger(ctx, logger), logger
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ParseLevel maps a configured level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
