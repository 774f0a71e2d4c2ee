package ctxutil

import (
	"context"
	"slices"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	apiKeyKey    ctxKey = "api_key"
)

// APIKeyAccess describes the project access granted by an API key.
type APIKeyAccess struct {
	KeyID     int64
	ProjectID int64
	Scopes    []string
}

// Allows reports whether the key grants scope on the project.
func (a APIKeyAccess) Allows(projectID int64, scope string) bool {
	return a.ProjectID == projectID && slices.Contains(a.Scopes, scope)
}

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns 0 and false if the value is missing, non-positive, or wrong type.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// AuthorID returns the authenticated user ID as a pointer, nil when absent.
func AuthorID(ctx context.Context) *int64 {
	id, ok := UserIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}

// WithAPIKey stores API key access in the context.
func WithAPIKey(ctx context.Context, access APIKeyAccess) context.Context {
	return context.WithValue(ctx, apiKeyKey, access)
}

// APIKeyFromCtx extracts API key access from the context.
func APIKeyFromCtx(ctx context.Context) (APIKeyAccess, bool) {
	access, ok := ctx.Value(apiKeyKey).(APIKeyAccess)
	return access, ok
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
