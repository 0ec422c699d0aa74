// service/library_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// ILibraryService defines the interface for library operations
type ILibraryService interface {
	CreateLibrary(ctx context.Context, library model.Library, requester model.User) (model.Library, error)
	UpdateLibrary(ctx context.Context, library model.Library, requester model.User) (model.Library, error)
	DeleteLibrary(ctx context.Context, libraryID string, requester model.User) error
	GetLibrary(ctx context.Context, libraryID string) (model.Library, error)
	ListLibraries(ctx context.Context) ([]model.Library, error)
}

type LibraryService struct {
	libraryStore   LibraryStore
	validationUtil *util.ValidationUtil
	publisher      Publisher
}

var _ ILibraryService = &LibraryService{}

func NewLibraryService(libraryStore LibraryStore, validationUtil *util.ValidationUtil, publisher Publisher) *LibraryService {
	return &LibraryService{
		libraryStore:   libraryStore,
		validationUtil: validationUtil,
		publisher:      publisher,
	}
}

// CreateLibrary publishes nothing: a new library has no books and no members.
func (s *LibraryService) CreateLibrary(ctx context.Context, library model.Library, requester model.User) (model.Library, error) {
	if err := requireAdmin(requester); err != nil {
		return model.Library{}, err
	}
	if err := s.validationUtil.ValidateLibrary(library); err != nil {
		return model.Library{}, err
	}

	created, err := s.libraryStore.CreateLibrary(ctx, library)
	if err != nil {
		return model.Library{}, err
	}
	logger.Info("Library created", zap.String("libraryID", created.ID), zap.String("requesterID", requester.ID))
	return created, nil
}

func (s *LibraryService) UpdateLibrary(ctx context.Context, library model.Library, requester model.User) (model.Library, error) {
	if err := requireAdmin(requester); err != nil {
		return model.Library{}, err
	}
	if err := s.validationUtil.ValidateLibrary(library); err != nil {
		return model.Library{}, err
	}

	updated, err := s.libraryStore.UpdateLibrary(ctx, library)
	if err != nil {
		return model.Library{}, err
	}

	s.publisher.Publish(ctx, util.NewLibraryEvent(util.EventLibraryUpdated, updated.ID))
	logger.Info("Library updated", zap.String("libraryID", updated.ID), zap.String("requesterID", requester.ID))
	return updated, nil
}

// DeleteLibrary removes the library together with its books.
func (s *LibraryService) DeleteLibrary(ctx context.Context, libraryID string, requester model.User) error {
	if err := requireAdmin(requester); err != nil {
		return err
	}
	if err := s.libraryStore.DeleteLibrary(ctx, libraryID); err != nil {
		return err
	}

	s.publisher.Publish(ctx, util.NewLibraryEvent(util.EventLibraryDeleted, libraryID))
	logger.Info("Library deleted", zap.String("libraryID", libraryID), zap.String("requesterID", requester.ID))
	return nil
}

func (s *LibraryService) GetLibrary(ctx context.Context, libraryID string) (model.Library, error) {
	return s.libraryStore.GetLibrary(ctx, libraryID)
}

func (s *LibraryService) ListLibraries(ctx context.Context) ([]model.Library, error) {
	return s.libraryStore.ListLibraries(ctx)
}
