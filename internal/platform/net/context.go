// Package net holds the transport neutral request context and response envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type callerKey struct{}

// RequestID returns the id the request id middleware stored on ctx
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithCaller records the authenticated caller on ctx
func WithCaller(ctx context.Context, caller string) context.Context {
	if caller == "" {
		return ctx
	}
	return context.WithValue(ctx, callerKey{}, caller)
}

// Caller returns the authenticated caller or ""
func Caller(ctx context.Context) string {
	s, _ := ctx.Value(callerKey{}).(string)
	return s
}
