package users

import (
	"errors"
	"net/http"
)

// Domain errors for user directory operations.
var (
	ErrNotFound     = errors.New("user not found")
	ErrDuplicate    = errors.New("a user with that email already exists")
	ErrInvalidRole  = errors.New("role must be admin or user")
	ErrEmptyName    = errors.New("name is required")
	ErrEmptyEmail   = errors.New("email is required")
	ErrNotSuspended = errors.New("user is not suspended")
	ErrSuspended    = errors.New("user is already suspended")
)

// MapHTTPStatus maps user domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrNotSuspended) ||
		errors.Is(err, ErrSuspended) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrEmptyEmail) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
