package middleware

import (
	"context"
	"net/http"

	"tourenzo/pkg/auth"
	apperrors "tourenzo/pkg/errors"
	httputil "tourenzo/pkg/http"
	"tourenzo/pkg/logger"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	ClaimsKey    contextKey = "claims"

	RequestIDHeader = "X-Request-ID"
)

func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// ClaimsFrom returns the verified token claims placed on the context by RequireAuth.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

func reject(w http.ResponseWriter, log *logger.Logger, err *apperrors.AppError) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		log.Error("failed to write error response", "code", err.Code, "error", writeErr)
	}
}
