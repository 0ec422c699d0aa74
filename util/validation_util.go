// util/validation_util.go

package util

import (
	"fmt"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateBook(book model.Book) error {
	if book.Title == "" || book.Author == "" || book.AuthorCountry == "" || book.LibraryID == "" {
		return fmt.Errorf("%w: title, author, author_country and library_id are required", feed_errors.ErrInvalidBookData)
	}
	if book.Pages <= 0 {
		return fmt.Errorf("%w: pages must be greater than 0", feed_errors.ErrInvalidBookData)
	}
	return nil
}

func (v *ValidationUtil) ValidateLibrary(library model.Library) error {
	if library.Name == "" {
		return fmt.Errorf("%w: library name cannot be empty", feed_errors.ErrInvalidLibraryData)
	}
	if library.Location == "" {
		return fmt.Errorf("%w: library location cannot be empty", feed_errors.ErrInvalidLibraryData)
	}
	return nil
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.Username == "" {
		return fmt.Errorf("%w: username cannot be empty", feed_errors.ErrInvalidUserData)
	}
	for _, id := range user.Libraries {
		if id == "" {
			return fmt.Errorf("%w: library ids cannot be empty", feed_errors.ErrInvalidUserData)
		}
	}
	return nil
}
