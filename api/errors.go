package api

import (
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
)

// NetworkError means the backend could not be reached at all. The user may
// simply retry.
type NetworkError struct {
	Op  string // "METHOD /path"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: connection error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx answer. Message comes from the {"error": ...} body
// when present and is meant to be shown verbatim.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNetworkError reports whether err is, or wraps, a *NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return apperrors.As(err, &netErr)
}

// StatusCode returns the HTTP status of an *APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if apperrors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports a rejected or expired bearer token.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden reports a 403, which listings return to players who have not
// enrolled yet.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}
