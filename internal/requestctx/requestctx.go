// Package requestctx carries per-request diagnostic context. The correlation
// identifier lives on the request's context.Context, so it is scoped to one
// logical request and dropped together with it on every exit path.
package requestctx

import (
	"context"
	"log/slog"
)

type correlationKey struct{}

// With returns a context carrying the correlation identifier.
func With(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationKey{}, correlationID)
}

// CorrelationID returns the correlation identifier or empty string.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// Logger derives a request-scoped logger from base, attaching the
// correlation identifier when present.
func Logger(ctx context.Context, base *slog.Logger) *slog.Logger {
	if id := CorrelationID(ctx); id != "" {
		return base.With(slog.String("correlation_id", id))
	}
	return base
}
