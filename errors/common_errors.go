// errors/common_errors.go
package errors

import "errors"

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidLimit      = errors.New("invalid limit")

	// ErrCacheUnavailable is returned by the cache store when it cannot be reached.
	// It never crosses the feed cache boundary.
	ErrCacheUnavailable = errors.New("cache store unavailable")
)
