// Package logging holds the structured-logging interface shared by the
// Pathshala CLI and backend. Both binaries log through it so command handlers
// and HTTP services stay decoupled from the concrete sink.
package logging

import "context"

// Logger is the logging surface the rest of the project depends on. Messages
// take the context of the operation being logged plus alternating key-value
// pairs:
//
//	log.Warn(ctx, "login failed", "email", email, "error", err)
type Logger interface {
	// Info records normal operational events (startup, shutdown, requests).
	Info(ctx context.Context, msg string, args ...any)

	// Warn records conditions the program recovered from or passed on to
	// the user, such as a rejected login or an unreadable session file.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures that need operator attention.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a derived logger whose entries always carry the given
	// key-value pairs.
	With(args ...any) Logger
}
