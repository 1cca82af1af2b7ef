// Package http provides the bearer token endpoint and the authentication and rate
// limiting middleware.
package http

import (
	"context"

	"github.com/google/uuid"
)

// userIDKey is the context key for the authenticated user id.
type userIDKey struct{}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID returns the authenticated user id. The second result is false when the
// request was not authenticated.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// CallerID returns the authenticated user id or uuid.Nil. Use cases treat uuid.Nil as
// an unauthenticated caller.
func CallerID(ctx context.Context) uuid.UUID {
	userID, _ := GetUserID(ctx)
	return userID
}
