package repository

import "errors"

// Sentinel errors shared by all stores. Domain packages wrap these
// with their own named errors via MapError.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// MapError converts store-level sentinels into domain equivalents.
// Any other error passes through unchanged.
func MapError(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return notFound
	case errors.Is(err, ErrDuplicate):
		return duplicate
	default:
		return err
	}
}
