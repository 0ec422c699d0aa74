// dao/user_dao.go
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
	helper_util "github.com/dev-mohitbeniwal/bookfeed/util/helper"
)

type UserDAO struct {
	Driver neo4j.DriverWithContext
}

func NewUserDAO(driver neo4j.DriverWithContext) *UserDAO {
	return &UserDAO{Driver: driver}
}

func (dao *UserDAO) EnsureConstraints(ctx context.Context) error {
	logger.Info("Ensuring unique constraints on User")
	if err := runSchema(ctx, dao.Driver,
		`CREATE CONSTRAINT unique_user_id IF NOT EXISTS FOR (u:`+LabelUser+`) REQUIRE u.id IS UNIQUE`,
		`CREATE CONSTRAINT unique_user_username IF NOT EXISTS FOR (u:`+LabelUser+`) REQUIRE u.username IS UNIQUE`,
	); err != nil {
		logger.Error("Failed to ensure unique constraints on User", zap.Error(err))
		return err
	}
	return nil
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("username", user.Username))

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	libraries := user.Libraries
	if libraries == nil {
		libraries = []string{}
	}
	now := helper_util.FormatTime(time.Now())
	created, err := writeNode(ctx, dao.Driver,
		`CREATE (u:`+LabelUser+` {id: $id}) SET u += $props RETURN u`,
		map[string]any{
			"id": user.ID,
			"props": map[string]any{
				"username":   user.Username,
				"country":    user.Country,
				"role":       user.EffectiveRole().String(),
				"libraryIds": libraries,
				"createdAt":  now,
				"updatedAt":  now,
			},
		}, mapNodeToUser)

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
			zap.Duration("duration", duration))
		return model.User{}, err
	}

	logger.Info("User created successfully",
		zap.String("userID", created.ID),
		zap.Duration("duration", duration))
	return created, nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (model.User, error) {
	users, err := readNodes(ctx, dao.Driver,
		`MATCH (u:`+LabelUser+` {id: $id}) RETURN u`,
		map[string]any{"id": userID}, mapNodeToUser)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err), zap.String("userID", userID))
		return model.User{}, err
	}
	if len(users) == 0 {
		return model.User{}, feed_errors.ErrUserNotFound
	}
	return users[0], nil
}

func (dao *UserDAO) ListUsers(ctx context.Context) ([]model.User, error) {
	start := time.Now()
	users, err := readNodes(ctx, dao.Driver,
		`MATCH (u:`+LabelUser+`) RETURN u ORDER BY u.id`,
		nil, mapNodeToUser)
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}
	logger.Debug("Listed users", zap.Int("count", len(users)), zap.Duration("duration", time.Since(start)))
	return users, nil
}

// UpdateLibraries replaces the user's membership list.
func (dao *UserDAO) UpdateLibraries(ctx context.Context, userID string, libraryIDs []string) (model.User, error) {
	start := time.Now()
	logger.Info("Updating user libraries",
		zap.String("userID", userID),
		zap.Strings("libraryIDs", libraryIDs))

	if libraryIDs == nil {
		libraryIDs = []string{}
	}
	updated, err := writeNode(ctx, dao.Driver, `
        MATCH (u:`+LabelUser+` {id: $id})
        SET u.libraryIds = $libraryIds, u.updatedAt = $updatedAt
        RETURN u
    `, map[string]any{
		"id":         userID,
		"libraryIds": libraryIDs,
		"updatedAt":  helper_util.FormatTime(time.Now()),
	}, mapNodeToUser)

	duration := time.Since(start)
	if errors.Is(err, errNoRows) {
		return model.User{}, feed_errors.ErrUserNotFound
	}
	if err != nil {
		logger.Error("Failed to update user libraries",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Duration("duration", duration))
		return model.User{}, err
	}

	logger.Info("User libraries updated successfully",
		zap.String("userID", userID),
		zap.Duration("duration", duration))
	return updated, nil
}
