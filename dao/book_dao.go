// dao/book_dao.go
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/model"
)

const (
	LabelBook    = "Book"
	LabelLibrary = "Library"
	LabelUser    = "User"
)

type BookDAO struct {
	Driver neo4j.DriverWithContext
}

func NewBookDAO(driver neo4j.DriverWithContext) *BookDAO {
	return &BookDAO{Driver: driver}
}

func (dao *BookDAO) EnsureConstraints(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Book ID")
	err := runSchema(ctx, dao.Driver,
		`CREATE CONSTRAINT unique_book_id IF NOT EXISTS FOR (b:`+LabelBook+`) REQUIRE b.id IS UNIQUE`,
		`CREATE INDEX book_library_id IF NOT EXISTS FOR (b:`+LabelBook+`) ON (b.libraryId)`,
	)
	if err != nil {
		logger.Error("Failed to ensure constraints on Book", zap.Error(err))
		return err
	}
	logger.Info("Successfully ensured constraints on Book")
	return nil
}

func (dao *BookDAO) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	start := time.Now()
	logger.Info("Creating new book", zap.String("title", book.Title), zap.String("libraryID", book.LibraryID))

	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	props := bookProps(book)
	props["createdAt"] = props["updatedAt"]

	query := `
        MATCH (l:` + LabelLibrary + ` {id: $libraryId})
        CREATE (b:` + LabelBook + ` {id: $id})
        SET b += $props
        RETURN b
    `
	created, err := writeNode(ctx, dao.Driver, query, map[string]any{
		"id":        book.ID,
		"libraryId": book.LibraryID,
		"props":     props,
	}, mapNodeToBook)

	duration := time.Since(start)
	if errors.Is(err, errNoRows) {
		logger.Warn("Library not found for new book",
			zap.String("libraryID", book.LibraryID),
			zap.Duration("duration", duration))
		return model.Book{}, feed_errors.ErrLibraryNotFound
	}
	if err != nil {
		logger.Error("Failed to create book",
			zap.Error(err),
			zap.String("title", book.Title),
			zap.Duration("duration", duration))
		return model.Book{}, err
	}

	logger.Info("Book created successfully",
		zap.String("bookID", created.ID),
		zap.Duration("duration", duration))
	return created, nil
}

func (dao *BookDAO) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	start := time.Now()
	logger.Info("Updating book", zap.String("bookID", book.ID))

	query := `
        MATCH (b:` + LabelBook + ` {id: $id})
        MATCH (l:` + LabelLibrary + ` {id: $libraryId})
        SET b += $props
        RETURN b
    `
	updated, err := writeNode(ctx, dao.Driver, query, map[string]any{
		"id":        book.ID,
		"libraryId": book.LibraryID,
		"props":     bookProps(book),
	}, mapNodeToBook)

	duration := time.Since(start)
	if errors.Is(err, errNoRows) {
		logger.Warn("Book or target library not found", zap.String("bookID", book.ID))
		return model.Book{}, feed_errors.ErrBookNotFound
	}
	if err != nil {
		logger.Error("Failed to update book",
			zap.Error(err),
			zap.String("bookID", book.ID),
			zap.Duration("duration", duration))
		return model.Book{}, err
	}

	logger.Info("Book updated successfully",
		zap.String("bookID", updated.ID),
		zap.Duration("duration", duration))
	return updated, nil
}

func (dao *BookDAO) DeleteBook(ctx context.Context, bookID string) error {
	start := time.Now()
	logger.Info("Deleting book", zap.String("bookID", bookID))

	deleted, err := deleteNodes(ctx, dao.Driver,
		`MATCH (b:`+LabelBook+` {id: $id}) DETACH DELETE b`,
		map[string]any{"id": bookID})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete book",
			zap.Error(err),
			zap.String("bookID", bookID),
			zap.Duration("duration", duration))
		return err
	}
	if deleted == 0 {
		return feed_errors.ErrBookNotFound
	}

	logger.Info("Book deleted successfully",
		zap.String("bookID", bookID),
		zap.Duration("duration", duration))
	return nil
}

func (dao *BookDAO) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	books, err := readNodes(ctx, dao.Driver,
		`MATCH (b:`+LabelBook+` {id: $id}) RETURN b`,
		map[string]any{"id": bookID}, mapNodeToBook)
	if err != nil {
		logger.Error("Failed to get book", zap.Error(err), zap.String("bookID", bookID))
		return model.Book{}, err
	}
	if len(books) == 0 {
		return model.Book{}, feed_errors.ErrBookNotFound
	}
	return books[0], nil
}

func (dao *BookDAO) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := readNodes(ctx, dao.Driver,
		`MATCH (b:`+LabelBook+`) RETURN b ORDER BY b.id`,
		nil, mapNodeToBook)
	if err != nil {
		logger.Error("Failed to list books", zap.Error(err))
		return nil, err
	}
	return books, nil
}

// BooksByLibraries returns every book owned by one of libraryIDs, ordered by
// id so that scoring ties break the same way on every recompute.
func (dao *BookDAO) BooksByLibraries(ctx context.Context, libraryIDs []string) ([]model.Book, error) {
	if len(libraryIDs) == 0 {
		return []model.Book{}, nil
	}
	start := time.Now()
	books, err := readNodes(ctx, dao.Driver,
		`MATCH (b:`+LabelBook+`) WHERE b.libraryId IN $libraryIds RETURN b ORDER BY b.id`,
		map[string]any{"libraryIds": libraryIDs}, mapNodeToBook)
	if err != nil {
		logger.Error("Failed to fetch books by libraries",
			zap.Error(err),
			zap.Int("libraries", len(libraryIDs)))
		return nil, err
	}
	logger.Debug("Fetched candidate books",
		zap.Int("libraries", len(libraryIDs)),
		zap.Int("books", len(books)),
		zap.Duration("duration", time.Since(start)))
	return books, nil
}

// BooksByIDs returns the books that still exist among ids, in no particular order.
func (dao *BookDAO) BooksByIDs(ctx context.Context, ids []string) ([]model.Book, error) {
	if len(ids) == 0 {
		return []model.Book{}, nil
	}
	books, err := readNodes(ctx, dao.Driver,
		`MATCH (b:`+LabelBook+`) WHERE b.id IN $ids RETURN b`,
		map[string]any{"ids": ids}, mapNodeToBook)
	if err != nil {
		logger.Error("Failed to fetch books by ids", zap.Error(err), zap.Int("ids", len(ids)))
		return nil, err
	}
	return books, nil
}
