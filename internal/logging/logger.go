// Package logging defines the structured logger the rest of the service
// depends on instead of a concrete logging library.
package logging

import "context"

// Logger is a context-aware structured logger. The variadic args are
// alternating key/value pairs:
//
//	log.Info(ctx, "starting server", "address", addr)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key/value pairs on
	// every record.
	With(args ...any) Logger
}
