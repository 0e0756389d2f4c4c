package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "tourenzo/pkg/errors"
)

// DecodeJSON reads a single JSON document from the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperrors.InvalidInput("Request body is required")
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return apperrors.New(apperrors.CodeRequestTooLarge, "Request body too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, io.EOF):
		return apperrors.InvalidInput("Request body is required")
	default:
		return apperrors.InvalidInput("Invalid request body")
	}
}
