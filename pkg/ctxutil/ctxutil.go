package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithCaller stores the resolved caller in the context. The caller's user ID
// is stored as well so request logging can pick it up.
func WithCaller(ctx context.Context, c domain.Caller) context.Context {
	ctx = context.WithValue(ctx, callerKey, c)
	return WithUserID(ctx, c.UserID)
}

// CallerFromCtx extracts the caller from the context.
// Returns the zero Caller and false for anonymous requests.
func CallerFromCtx(ctx context.Context) (domain.Caller, bool) {
	c, ok := ctx.Value(callerKey).(domain.Caller)
	if !ok || !c.IsAuthenticated() {
		return domain.Caller{}, false
	}
	return c, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
