// errors/library_errors.go
package errors

import "errors"

var (
	ErrLibraryNotFound    = errors.New("library not found")
	ErrInvalidLibraryData = errors.New("invalid library data")
	ErrNotLibraryMember   = errors.New("user is not a member of the library")
)
