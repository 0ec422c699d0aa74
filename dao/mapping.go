// dao/mapping.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/dev-mohitbeniwal/bookfeed/db"
	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	helper_util "github.com/dev-mohitbeniwal/bookfeed/util/helper"
)

// errNoRows marks a single-node query that matched nothing; callers
// translate it into their own not-found sentinel.
var errNoRows = errors.New("no rows")

// readNodes runs query in a read transaction and maps the first column of
// every row.
func readNodes[T any](ctx context.Context, driver neo4j.DriverWithContext, query string, params map[string]any, mapFn func(neo4j.Node) (T, error)) ([]T, error) {
	result, err := db.ExecuteReadTransaction(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
		return collectNodes(ctx, tx, query, params, mapFn)
	})
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	return result.([]T), nil
}

// writeNode runs query in a write transaction and maps the single returned node.
func writeNode[T any](ctx context.Context, driver neo4j.DriverWithContext, query string, params map[string]any, mapFn func(neo4j.Node) (T, error)) (T, error) {
	var zero T
	result, err := db.ExecuteWriteTransaction(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
		items, err := collectNodes(ctx, tx, query, params, mapFn)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errNoRows
		}
		return items[0], nil
	})
	if err != nil {
		return zero, wrapDatabaseError(err)
	}
	return result.(T), nil
}

// deleteNodes runs a DETACH DELETE query and returns the number of nodes removed.
func deleteNodes(ctx context.Context, driver neo4j.DriverWithContext, query string, params map[string]any) (int, error) {
	result, err := db.ExecuteWriteTransaction(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		summary, err := res.Consume(ctx)
		if err != nil {
			return nil, err
		}
		return summary.Counters().NodesDeleted(), nil
	})
	if err != nil {
		return 0, wrapDatabaseError(err)
	}
	return result.(int), nil
}

func runSchema(ctx context.Context, driver neo4j.DriverWithContext, statements ...string) error {
	_, err := db.ExecuteWriteTransaction(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, stmt := range statements {
			if _, err := tx.Run(ctx, stmt, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

func collectNodes[T any](ctx context.Context, tx neo4j.ManagedTransaction, query string, params map[string]any, mapFn func(neo4j.Node) (T, error)) ([]T, error) {
	res, err := tx.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	records, err := res.Collect(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(records))
	for _, record := range records {
		node, ok := record.Values[0].(neo4j.Node)
		if !ok {
			return nil, fmt.Errorf("unexpected column type %T", record.Values[0])
		}
		item, err := mapFn(node)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func wrapDatabaseError(err error) error {
	if errors.Is(err, errNoRows) {
		return err
	}
	return fmt.Errorf("%w: %v", feed_errors.ErrDatabaseOperation, err)
}

func mapNodeToBook(node neo4j.Node) (model.Book, error) {
	props := node.Props
	published, err := timeProp(props, "publishedDate")
	if err != nil {
		return model.Book{}, fmt.Errorf("book %v: %w", props["id"], err)
	}
	return model.Book{
		ID:            stringProp(props, "id"),
		Title:         stringProp(props, "title"),
		Author:        stringProp(props, "author"),
		PublishedDate: published,
		Pages:         int(intProp(props, "pages")),
		AuthorCountry: stringProp(props, "authorCountry"),
		LibraryID:     stringProp(props, "libraryId"),
		CreatedAt:     optionalTimeProp(props, "createdAt"),
		UpdatedAt:     optionalTimeProp(props, "updatedAt"),
	}, nil
}

func bookProps(b model.Book) map[string]any {
	return map[string]any{
		"title":         b.Title,
		"author":        b.Author,
		"publishedDate": helper_util.FormatTime(b.PublishedDate),
		"pages":         int64(b.Pages),
		"authorCountry": b.AuthorCountry,
		"libraryId":     b.LibraryID,
		"updatedAt":     helper_util.FormatTime(time.Now()),
	}
}

func mapNodeToLibrary(node neo4j.Node) (model.Library, error) {
	props := node.Props
	return model.Library{
		ID:        stringProp(props, "id"),
		Name:      stringProp(props, "name"),
		Location:  stringProp(props, "location"),
		CreatedAt: optionalTimeProp(props, "createdAt"),
		UpdatedAt: optionalTimeProp(props, "updatedAt"),
	}, nil
}

func mapNodeToUser(node neo4j.Node) (model.User, error) {
	props := node.Props
	role, err := model.ParseRole(stringProp(props, "role"))
	if err != nil {
		return model.User{}, fmt.Errorf("user %v: %w", props["id"], err)
	}
	return model.User{
		ID:        stringProp(props, "id"),
		Username:  stringProp(props, "username"),
		Country:   stringProp(props, "country"),
		Role:      role,
		Libraries: stringListProp(props, "libraryIds"),
		CreatedAt: optionalTimeProp(props, "createdAt"),
		UpdatedAt: optionalTimeProp(props, "updatedAt"),
	}, nil
}

func stringProp(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func intProp(props map[string]any, key string) int64 {
	switch v := props[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func stringListProp(props map[string]any, key string) []string {
	switch v := props[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

func timeProp(props map[string]any, key string) (time.Time, error) {
	t, err := helper_util.ParseTime(props[key])
	if err != nil {
		return time.Time{}, fmt.Errorf("missing or invalid %s: %w", key, err)
	}
	return t, nil
}

func optionalTimeProp(props map[string]any, key string) time.Time {
	t, _ := timeProp(props, key)
	return t
}

// EnsureSchema creates the constraints and indexes every DAO relies on.
func EnsureSchema(ctx context.Context, driver neo4j.DriverWithContext) error {
	if err := NewLibraryDAO(driver).EnsureConstraints(ctx); err != nil {
		return err
	}
	if err := NewBookDAO(driver).EnsureConstraints(ctx); err != nil {
		return err
	}
	return NewUserDAO(driver).EnsureConstraints(ctx)
}
