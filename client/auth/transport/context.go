package transport

import (
	"context"
)

type contextKey string

// ContextAuthTokenKey carries a per call token overriding the stored one.
const ContextAuthTokenKey contextKey = "authToken"

// WithToken returns a context whose requests use token instead of the stored one.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ContextAuthTokenKey, token)
}

func getAuthToken(ctx context.Context) (string, bool) {
	if v := ctx.Value(ContextAuthTokenKey); v != nil {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}
