// service/access.go
package service

import (
	"fmt"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/model"
)

func requireAdmin(requester model.User) error {
	if !requester.IsAdmin() {
		return fmt.Errorf("%w: admin role required", feed_errors.ErrForbidden)
	}
	return nil
}

func requireLibraryAccess(requester model.User, libraryID string) error {
	if !requester.EffectiveRole().Covers(requester.Libraries, libraryID) {
		return fmt.Errorf("%w: %s", feed_errors.ErrNotLibraryMember, libraryID)
	}
	return nil
}

func requireSelfOrAdmin(requester model.User, userID string) error {
	if requester.ID != userID && !requester.IsAdmin() {
		return fmt.Errorf("%w: cannot act on another user", feed_errors.ErrForbidden)
	}
	return nil
}
