// test/mock/store.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/bookfeed/model"
)

// MockBookStore is a mock implementation of service.BookStore
type MockBookStore struct {
	mock.Mock
}

func (m *MockBookStore) BooksByLibraries(ctx context.Context, libraryIDs []string) ([]model.Book, error) {
	args := m.Called(ctx, libraryIDs)
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookStore) BooksByIDs(ctx context.Context, ids []string) ([]model.Book, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookStore) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *MockBookStore) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *MockBookStore) DeleteBook(ctx context.Context, bookID string) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

func (m *MockBookStore) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *MockBookStore) ListBooks(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Book), args.Error(1)
}

// MockLibraryStore is a mock implementation of service.LibraryStore
type MockLibraryStore struct {
	mock.Mock
}

func (m *MockLibraryStore) ListLibraryIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLibraryStore) CreateLibrary(ctx context.Context, library model.Library) (model.Library, error) {
	args := m.Called(ctx, library)
	return args.Get(0).(model.Library), args.Error(1)
}

func (m *MockLibraryStore) UpdateLibrary(ctx context.Context, library model.Library) (model.Library, error) {
	args := m.Called(ctx, library)
	return args.Get(0).(model.Library), args.Error(1)
}

func (m *MockLibraryStore) DeleteLibrary(ctx context.Context, libraryID string) error {
	args := m.Called(ctx, libraryID)
	return args.Error(0)
}

func (m *MockLibraryStore) GetLibrary(ctx context.Context, libraryID string) (model.Library, error) {
	args := m.Called(ctx, libraryID)
	return args.Get(0).(model.Library), args.Error(1)
}

func (m *MockLibraryStore) ListLibraries(ctx context.Context) ([]model.Library, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Library), args.Error(1)
}

// MockUserStore is a mock implementation of service.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) GetUser(ctx context.Context, userID string) (model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) UpdateLibraries(ctx context.Context, userID string, libraryIDs []string) (model.User, error) {
	args := m.Called(ctx, userID, libraryIDs)
	return args.Get(0).(model.User), args.Error(1)
}
