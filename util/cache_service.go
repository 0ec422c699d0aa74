// util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/metrics"
)

// KeyValueStore is the slice of the cache store the feed cache needs.
// db.RedisStore implements it.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CacheService keeps each user's ranked book ids. It never returns store
// errors: reads degrade to a miss, writes are dropped with a warning.
type CacheService struct {
	store KeyValueStore
	ttl   time.Duration
}

func NewCacheService(store KeyValueStore, ttl time.Duration) *CacheService {
	return &CacheService{store: store, ttl: ttl}
}

func FeedKey(userID string) string {
	return fmt.Sprintf("feed:%s", userID)
}

// GetFeedIDs returns the cached ranking for userID. ok is false when the
// entry is absent, expired, unreadable, or the store is unavailable.
func (c *CacheService) GetFeedIDs(ctx context.Context, userID string) ([]string, bool) {
	raw, found, err := c.store.Get(ctx, FeedKey(userID))
	if err != nil {
		metrics.RecordCacheLookup(metrics.CacheError)
		logger.Warn("Feed cache read failed, treating as miss", zap.String("userID", userID), zap.Error(err))
		return nil, false
	}
	if !found {
		metrics.RecordCacheLookup(metrics.CacheMiss)
		logger.Debug("Feed not found in cache", zap.String("userID", userID))
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		metrics.RecordCacheLookup(metrics.CacheError)
		logger.Warn("Cached feed is not a list of ids, treating as miss", zap.String("userID", userID), zap.Error(err))
		return nil, false
	}
	if len(ids) == 0 {
		metrics.RecordCacheLookup(metrics.CacheMiss)
		return nil, false
	}

	metrics.RecordCacheLookup(metrics.CacheHit)
	logger.Debug("Feed retrieved from cache", zap.String("userID", userID), zap.Int("count", len(ids)))
	return ids, true
}

// SetFeedIDs replaces the user's entry with ids under the process-wide TTL.
func (c *CacheService) SetFeedIDs(ctx context.Context, userID string, ids []string) {
	payload, err := json.Marshal(ids)
	if err != nil {
		logger.Error("Failed to marshal feed ids", zap.String("userID", userID), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, FeedKey(userID), string(payload), c.ttl); err != nil {
		metrics.FeedCacheWriteErrors.WithLabelValues("set").Inc()
		logger.Warn("Failed to cache feed", zap.String("userID", userID), zap.Error(err))
		return
	}
	logger.Debug("Feed cached successfully", zap.String("userID", userID), zap.Int("count", len(ids)))
}

func (c *CacheService) DeleteFeed(ctx context.Context, userID string) {
	if err := c.store.Del(ctx, FeedKey(userID)); err != nil {
		metrics.FeedCacheWriteErrors.WithLabelValues("delete").Inc()
		logger.Warn("Failed to delete cached feed", zap.String("userID", userID), zap.Error(err))
		return
	}
	logger.Debug("Feed deleted from cache", zap.String("userID", userID))
}
