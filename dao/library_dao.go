// dao/library_dao.go
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

type LibraryDAO struct {
	Driver neo4j.DriverWithContext
}

func NewLibraryDAO(driver neo4j.DriverWithContext) *LibraryDAO {
	return &LibraryDAO{Driver: driver}
}

func (dao *LibraryDAO) EnsureConstraints(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Library ID")
	if err := runSchema(ctx, dao.Driver,
		`CREATE CONSTRAINT unique_library_id IF NOT EXISTS FOR (l:`+LabelLibrary+`) REQUIRE l.id IS UNIQUE`,
	); err != nil {
		logger.Error("Failed to ensure unique constraint on Library ID", zap.Error(err))
		return err
	}
	return nil
}

func (dao *LibraryDAO) CreateLibrary(ctx context.Context, library model.Library) (model.Library, error) {
	start := time.Now()
	logger.Info("Creating new library", zap.String("name", library.Name))

	if library.ID == "" {
		library.ID = uuid.New().String()
	}
	now := helper_util.FormatTime(time.Now())
	created, err := writeNode(ctx, dao.Driver,
		`CREATE (l:`+LabelLibrary+` {id: $id}) SET l += $props RETURN l`,
		map[string]any{
			"id": library.ID,
			"props": map[string]any{
				"name":      library.Name,
				"location":  library.Location,
				"createdAt": now,
				"updatedAt": now,
			},
		}, mapNodeToLibrary)

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create library",
			zap.Error(err),
			zap.String("name", library.Name),
			zap.Duration("duration", duration))
		return model.Library{}, err
	}

	logger.Info("Library created successfully",
		zap.String("libraryID", created.ID),
		zap.Duration("duration", duration))
	return created, nil
}

func (dao *LibraryDAO) UpdateLibrary(ctx context.Context, library model.Library) (model.Library, error) {
	start := time.Now()
	logger.Info("Updating library", zap.String("libraryID", library.ID))

	updated, err := writeNode(ctx, dao.Driver,
		`MATCH (l:`+LabelLibrary+` {id: $id}) SET l += $props RETURN l`,
		map[string]any{
			"id": library.ID,
			"props": map[string]any{
				"name":      library.Name,
				"location":  library.Location,
				"updatedAt": helper_util.FormatTime(time.Now()),
			},
		}, mapNodeToLibrary)

	duration := time.Since(start)
	if errors.Is(err, errNoRows) {
		return model.Library{}, feed_errors.ErrLibraryNotFound
	}
	if err != nil {
		logger.Error("Failed to update library",
			zap.Error(err),
			zap.String("libraryID", library.ID),
			zap.Duration("duration", duration))
		return model.Library{}, err
	}

	logger.Info("Library updated successfully",
		zap.String("libraryID", updated.ID),
		zap.Duration("duration", duration))
	return updated, nil
}

// DeleteLibrary removes the library and every book it owns. Users' stored
// membership lists keep the id.
func (dao *LibraryDAO) DeleteLibrary(ctx context.Context, libraryID string) error {
	start := time.Now()
	logger.Info("Deleting library", zap.String("libraryID", libraryID))

	deleted, err := deleteNodes(ctx, dao.Driver, `
        MATCH (l:`+LabelLibrary+` {id: $id})
        OPTIONAL MATCH (b:`+LabelBook+` {libraryId: $id})
        DETACH DELETE b, l
    `, map[string]any{"id": libraryID})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete library",
			zap.Error(err),
			zap.String("libraryID", libraryID),
			zap.Duration("duration", duration))
		return err
	}
	if deleted == 0 {
		return feed_errors.ErrLibraryNotFound
	}

	logger.Info("Library deleted successfully",
		zap.String("libraryID", libraryID),
		zap.Int("nodesDeleted", deleted),
		zap.Duration("duration", duration))
	return nil
}

func (dao *LibraryDAO) GetLibrary(ctx context.Context, libraryID string) (model.Library, error) {
	libraries, err := readNodes(ctx, dao.Driver,
		`MATCH (l:`+LabelLibrary+` {id: $id}) RETURN l`,
		map[string]any{"id": libraryID}, mapNodeToLibrary)
	if err != nil {
		logger.Error("Failed to get library", zap.Error(err), zap.String("libraryID", libraryID))
		return model.Library{}, err
	}
	if len(libraries) == 0 {
		return model.Library{}, feed_errors.ErrLibraryNotFound
	}
	return libraries[0], nil
}

func (dao *LibraryDAO) ListLibraries(ctx context.Context) ([]model.Library, error) {
	libraries, err := readNodes(ctx, dao.Driver,
		`MATCH (l:`+LabelLibrary+`) RETURN l ORDER BY l.id`,
		nil, mapNodeToLibrary)
	if err != nil {
		logger.Error("Failed to list libraries", zap.Error(err))
		return nil, err
	}
	return libraries, nil
}

// ListLibraryIDs returns the id of every library that currently exists.
func (dao *LibraryDAO) ListLibraryIDs(ctx context.Context) ([]string, error) {
	libraries, err := dao.ListLibraries(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(libraries))
	for i, l := range libraries {
		ids[i] = l.ID
	}
	return ids, nil
}
