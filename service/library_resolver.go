// service/library_resolver.go
package service

import (
	"context"

	"github.com/dev-mohitbeniwal/bookfeed/model"
)

// LibraryResolver decides which libraries feed a user. The rule belongs to
// the user's role: admins see every existing library, members their own.
type LibraryResolver struct {
	libraries model.LibraryLister
}

func NewLibraryResolver(libraries model.LibraryLister) *LibraryResolver {
	return &LibraryResolver{libraries: libraries}
}

// Resolve returns the deduplicated library ids eligible for user's feed.
// An empty result is valid and yields an empty feed.
func (r *LibraryResolver) Resolve(ctx context.Context, user model.User) ([]string, error) {
	return user.EffectiveRole().Libraries(ctx, user.Libraries, r.libraries)
}

// Covers reports whether a change to libraryID affects user's feed.
func (r *LibraryResolver) Covers(user model.User, libraryID string) bool {
	return user.EffectiveRole().Covers(user.Libraries, libraryID)
}
