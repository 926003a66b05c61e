package auth

import "context"

type contextKey string

var userIDKey contextKey = "user_id"

// SetUserID stores the authenticated user id in the request context.
func SetUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID retrieves the authenticated user id; ok is false when the
// request was not authenticated.
func GetUserID(ctx context.Context) (uint, bool) {
	val := ctx.Value(userIDKey)
	if id, ok := val.(uint); ok {
		return id, true
	}
	return 0, false
}
