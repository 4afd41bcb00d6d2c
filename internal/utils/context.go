// Package utils provides small helpers shared by the lookup server and the
// terminal client: request-scoped context keys, trace ID generation, JSON and
// text response writers and the resty-backed HTTP client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by this
// package never collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the per-request trace ID is stored.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "0190f3c2-...")
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace ID stored by [WithTraceID].
// ok is false when the value is missing, empty or of an unexpected type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	if !ok || traceID == "" {
		return "", false
	}
	return traceID, true
}
