package api

import (
	"context"
)

type keyType string

const (
	userIDKey keyType = "userID"
	staffKey  keyType = "staff"
)

// ctxWithUser adds the authenticated subject and staff flag to the context
func ctxWithUser(ctx context.Context, userID string, staff bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, staffKey, staff)
}

// ctxUserID retrieves the authenticated subject from the context
func ctxUserID(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}
