package reviews

import (
	"errors"
	"net/http"
)

// Domain errors for moderation queue operations.
var (
	ErrNotFound      = errors.New("flagged review not found")
	ErrDuplicate     = errors.New("review already flagged")
	ErrInvalidStatus = errors.New("status must be pending, approved, or removed")
	ErrNotPending    = errors.New("review is not pending moderation")
)

// MapHTTPStatus maps moderation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrNotPending) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidStatus) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
