package middleware

import (
	"net/http"

	apperrors "tourenzo/pkg/errors"
	"tourenzo/pkg/logger"
)

// MaxRequestSize rejects declared oversize bodies up front and caps the rest,
// so DecodeJSON sees a *http.MaxBytesError instead of reading without bound.
func MaxRequestSize(limit int64, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				reject(w, log, apperrors.New(
					apperrors.CodeRequestTooLarge,
					"Request body too large",
					http.StatusRequestEntityTooLarge,
				))
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
