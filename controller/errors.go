// controller/errors.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// respondWithServiceError maps a service error to a status code. Unknown
// errors become a 500 carrying fallback as the message.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, feed_errors.ErrBookNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Book not found", err)
	case errors.Is(err, feed_errors.ErrLibraryNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Library not found", err)
	case errors.Is(err, feed_errors.ErrUserNotFound):
		util.RespondWithError(c, http.StatusNotFound, "User not found", err)
	case errors.Is(err, feed_errors.ErrInvalidBookData),
		errors.Is(err, feed_errors.ErrInvalidLibraryData),
		errors.Is(err, feed_errors.ErrInvalidUserData),
		errors.Is(err, feed_errors.ErrUnknownRole):
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, feed_errors.ErrNotLibraryMember),
		errors.Is(err, feed_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, feed_errors.ErrUnauthorized):
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, feed_errors.ErrDatabaseOperation):
		util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}
