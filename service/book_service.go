// service/book_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// IBookService defines the interface for book operations
type IBookService interface {
	CreateBook(ctx context.Context, book model.Book, requester model.User) (model.Book, error)
	UpdateBook(ctx context.Context, bookID string, update model.BookUpdate, requester model.User) (model.Book, error)
	DeleteBook(ctx context.Context, bookID string, requester model.User) error
	GetBook(ctx context.Context, bookID string, requester model.User) (model.Book, error)
	ListBooks(ctx context.Context, requester model.User) ([]model.Book, error)
}

// BookService handles catalog changes and announces them on the bus once
// they are committed.
type BookService struct {
	bookStore      BookStore
	resolver       *LibraryResolver
	validationUtil *util.ValidationUtil
	publisher      Publisher
}

var _ IBookService = &BookService{}

func NewBookService(bookStore BookStore, libraries model.LibraryLister, validationUtil *util.ValidationUtil, publisher Publisher) *BookService {
	return &BookService{
		bookStore:      bookStore,
		resolver:       NewLibraryResolver(libraries),
		validationUtil: validationUtil,
		publisher:      publisher,
	}
}

func (s *BookService) CreateBook(ctx context.Context, book model.Book, requester model.User) (model.Book, error) {
	if book.PublishedDate.IsZero() {
		book.PublishedDate = time.Now()
	}
	if err := s.validationUtil.ValidateBook(book); err != nil {
		return model.Book{}, err
	}
	if err := requireLibraryAccess(requester, book.LibraryID); err != nil {
		return model.Book{}, err
	}

	created, err := s.bookStore.CreateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}

	s.publisher.Publish(ctx, util.NewLibraryEvent(util.EventBookCreated, created.LibraryID))
	logger.Info("Book created",
		zap.String("bookID", created.ID),
		zap.String("libraryID", created.LibraryID),
		zap.String("requesterID", requester.ID))
	return created, nil
}

// UpdateBook applies update to the book. An edit inside one library is
// announced as LibraryUpdated; moving a book announces BookDeleted for the
// old library and BookCreated for the new one.
func (s *BookService) UpdateBook(ctx context.Context, bookID string, update model.BookUpdate, requester model.User) (model.Book, error) {
	existing, err := s.bookStore.GetBook(ctx, bookID)
	if err != nil {
		return model.Book{}, err
	}
	if err := requireLibraryAccess(requester, existing.LibraryID); err != nil {
		return model.Book{}, err
	}

	book := update.Apply(existing)
	if err := s.validationUtil.ValidateBook(book); err != nil {
		return model.Book{}, err
	}
	moved := book.LibraryID != existing.LibraryID
	if moved {
		if err := requireLibraryAccess(requester, book.LibraryID); err != nil {
			return model.Book{}, err
		}
	}

	updated, err := s.bookStore.UpdateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}

	if moved {
		s.publisher.Publish(ctx, util.NewLibraryEvent(util.EventBookDeleted, existing.LibraryID))
		s.publisher.Publish(ctx, util.NewLibraryEvent(util.EventBookCreated, updated.LibraryID))
	} else {
		s.publisher.Publish(ctx, util.NewLibraryEvent(util.EventLibraryUpdated, updated.LibraryID))
	}
	logger.Info("Book updated",
		zap.String("bookID", updated.ID),
		zap.Bool("moved", moved),
		zap.String("requesterID", requester.ID))
	return updated, nil
}

func (s *BookService) DeleteBook(ctx context.Context, bookID string, requester model.User) error {
	existing, err := s.bookStore.GetBook(ctx, bookID)
	if err != nil {
		return err
	}
	if err := requireLibraryAccess(requester, existing.LibraryID); err != nil {
		return err
	}

	if err := s.bookStore.DeleteBook(ctx, bookID); err != nil {
		return err
	}

	s.publisher.Publish(ctx, util.NewLibraryEvent(util.EventBookDeleted, existing.LibraryID))
	logger.Info("Book deleted",
		zap.String("bookID", bookID),
		zap.String("libraryID", existing.LibraryID),
		zap.String("requesterID", requester.ID))
	return nil
}

func (s *BookService) GetBook(ctx context.Context, bookID string, requester model.User) (model.Book, error) {
	book, err := s.bookStore.GetBook(ctx, bookID)
	if err != nil {
		return model.Book{}, err
	}
	if err := requireLibraryAccess(requester, book.LibraryID); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// ListBooks returns the whole catalog to admins and the books of their own
// libraries to members.
func (s *BookService) ListBooks(ctx context.Context, requester model.User) ([]model.Book, error) {
	if requester.IsAdmin() {
		return s.bookStore.ListBooks(ctx)
	}
	libraryIDs, err := s.resolver.Resolve(ctx, requester)
	if err != nil {
		return nil, err
	}
	return s.bookStore.BooksByLibraries(ctx, libraryIDs)
}
