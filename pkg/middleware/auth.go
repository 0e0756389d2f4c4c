package middleware

import (
	"net/http"
	"strings"

	"tourenzo/pkg/auth"
	apperrors "tourenzo/pkg/errors"
	"tourenzo/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// RequireAuth wraps a single route. It verifies the Bearer token and puts
// its claims on the request context.
func RequireAuth(tokens TokenValidator, log *logger.Logger, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			reject(w, log, apperrors.Unauthorized("Missing bearer token"))
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			log.Warn("Rejected access token",
				"request_id", RequestIDFrom(r.Context()),
				"path", r.URL.Path,
				"error", err,
			)
			reject(w, log, apperrors.Unauthorized("Invalid or expired token"))
			return
		}

		next(w, r.WithContext(WithClaims(r.Context(), claims)), ps)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
