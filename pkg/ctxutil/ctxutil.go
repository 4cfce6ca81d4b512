// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	callerKey    struct{}
	requestIDKey struct{}
)

// Caller is the authenticated principal of a request.
type Caller struct {
	ID   uuid.UUID
	Role string
}

// WithCaller attaches c to ctx.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFromCtx reports the caller, if an authenticated one is present.
// A Caller with a nil ID counts as absent.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	if !ok || c.ID == uuid.Nil {
		return Caller{}, false
	}
	return c, true
}

// UserIDFromCtx is CallerFromCtx narrowed to the ID.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	c, ok := CallerFromCtx(ctx)
	return c.ID, ok
}

// UserRoleFromCtx returns the caller's role, or "" for anonymous requests.
func UserRoleFromCtx(ctx context.Context) string {
	c, _ := CallerFromCtx(ctx)
	return c.Role
}

// WithRequestID attaches the request correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the correlation ID, or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
