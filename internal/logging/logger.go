// Package logging defines the structured-logging interface shared by the
// scanner and the authority, plus a log/slog adapter (SlogLogger).
package logging

import "context"

// Logger logs key-value records bound to a context:
//
//	log.Info(ctx, "queue drained", "event", slug, "uploaded", n)
type Logger interface {
	// Debug carries decision traces and page counts; off by default.
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for conditions a scanner survives, such as a bad trusted key.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}
