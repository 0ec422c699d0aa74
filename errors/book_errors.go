// errors/book_errors.go
package errors

import "errors"

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrInvalidBookData = errors.New("invalid book data")
)
