// service/interfaces.go
package service

import (
	"context"

	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// BookProvider is the catalog read side the feed engine depends on.
type BookProvider interface {
	BooksByLibraries(ctx context.Context, libraryIDs []string) ([]model.Book, error)
	BooksByIDs(ctx context.Context, ids []string) ([]model.Book, error)
}

// UserProvider lists users for warm-up and library-scoped recomputation.
type UserProvider interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID string) (model.User, error)
}

// FeedCache stores ranked book ids per user. Implementations never fail.
type FeedCache interface {
	GetFeedIDs(ctx context.Context, userID string) ([]string, bool)
	SetFeedIDs(ctx context.Context, userID string, ids []string)
	DeleteFeed(ctx context.Context, userID string)
}

// Publisher emits invalidation events after a change is committed.
type Publisher interface {
	Publish(ctx context.Context, event util.Event)
}

type BookStore interface {
	BookProvider
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, bookID string) error
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
}

type LibraryStore interface {
	model.LibraryLister
	CreateLibrary(ctx context.Context, library model.Library) (model.Library, error)
	UpdateLibrary(ctx context.Context, library model.Library) (model.Library, error)
	DeleteLibrary(ctx context.Context, libraryID string) error
	GetLibrary(ctx context.Context, libraryID string) (model.Library, error)
	ListLibraries(ctx context.Context) ([]model.Library, error)
}

type UserStore interface {
	UserProvider
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateLibraries(ctx context.Context, userID string, libraryIDs []string) (model.User, error)
}
