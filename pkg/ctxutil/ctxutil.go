package ctxutil

import "context"

type ctxKey string

const (
	parentIDKey  ctxKey = "parent_id"
	requestIDKey ctxKey = "request_id"
)

// WithParentID stores the authenticated parent's ID in the context.
func WithParentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, parentIDKey, id)
}

// ParentIDFromCtx extracts the parent ID from the context.
// Returns "" and false if the value is missing, empty, or the wrong type.
func ParentIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(parentIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
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
