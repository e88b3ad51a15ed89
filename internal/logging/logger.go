// Package logging is the structured logger every component receives.
package logging

import "context"

// Logger takes key-value pairs after the message:
//
//	log.Info(ctx, "user registered", "user_id", id)
//
// Passwords, password hashes and session tokens are never passed as values.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record, usually
	// With("module", name).
	With(args ...any) Logger
}
