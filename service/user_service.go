// service/user_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// IUserService defines the interface for user operations
type IUserService interface {
	CreateUser(ctx context.Context, user model.User, requester model.User) (model.User, error)
	GetUser(ctx context.Context, userID string, requester model.User) (model.User, error)
	UpdateLibraries(ctx context.Context, userID string, libraryIDs []string, requester model.User) (model.User, error)
}

// UserService handles business logic for user operations
type UserService struct {
	userStore      UserStore
	libraries      model.LibraryLister
	validationUtil *util.ValidationUtil
	publisher      Publisher
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(userStore UserStore, libraries model.LibraryLister, validationUtil *util.ValidationUtil, publisher Publisher) *UserService {
	return &UserService{
		userStore:      userStore,
		libraries:      libraries,
		validationUtil: validationUtil,
		publisher:      publisher,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user model.User, requester model.User) (model.User, error) {
	if err := requireAdmin(requester); err != nil {
		return model.User{}, err
	}
	if err := s.validationUtil.ValidateUser(user); err != nil {
		return model.User{}, err
	}
	if err := s.checkLibrariesExist(ctx, user.Libraries); err != nil {
		return model.User{}, err
	}

	created, err := s.userStore.CreateUser(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	s.publisher.Publish(ctx, util.NewUserLibrariesChangedEvent(created.ID))
	logger.Info("User created",
		zap.String("userID", created.ID),
		zap.String("role", created.EffectiveRole().String()),
		zap.String("requesterID", requester.ID))
	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string, requester model.User) (model.User, error) {
	if err := requireSelfOrAdmin(requester, userID); err != nil {
		return model.User{}, err
	}
	return s.userStore.GetUser(ctx, userID)
}

// UpdateLibraries replaces the user's memberships. Every id must name an
// existing library.
func (s *UserService) UpdateLibraries(ctx context.Context, userID string, libraryIDs []string, requester model.User) (model.User, error) {
	if err := requireSelfOrAdmin(requester, userID); err != nil {
		return model.User{}, err
	}
	if err := s.checkLibrariesExist(ctx, libraryIDs); err != nil {
		return model.User{}, err
	}

	updated, err := s.userStore.UpdateLibraries(ctx, userID, libraryIDs)
	if err != nil {
		return model.User{}, err
	}

	s.publisher.Publish(ctx, util.NewUserLibrariesChangedEvent(userID))
	logger.Info("User libraries updated",
		zap.String("userID", userID),
		zap.Int("libraries", len(updated.Libraries)),
		zap.String("requesterID", requester.ID))
	return updated, nil
}

func (s *UserService) checkLibrariesExist(ctx context.Context, libraryIDs []string) error {
	if len(libraryIDs) == 0 {
		return nil
	}
	existing, err := s.libraries.ListLibraryIDs(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}
	for _, id := range libraryIDs {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: %s", feed_errors.ErrLibraryNotFound, id)
		}
	}
	return nil
}
