// service/feed_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/metrics"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/ranking"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// IFeedService defines the interface for feed operations
type IFeedService interface {
	GetFeed(ctx context.Context, user model.User, limit int) ([]model.Book, error)
	RecomputeForUser(ctx context.Context, user model.User) error
	WarmAll(ctx context.Context) error
	HandleEvent(ctx context.Context, event util.Event) error
}

type FeedOptions struct {
	Workers         int
	QueueSize       int
	WarmConcurrency int
	Scorer          *ranking.Scorer
}

// FeedService serves ranked feeds cache-first and keeps cached rankings
// fresh by recomputing affected users when invalidation events arrive.
type FeedService struct {
	books           BookProvider
	users           UserProvider
	resolver        *LibraryResolver
	cache           FeedCache
	scorer          *ranking.Scorer
	queue           *RecomputeQueue
	warmConcurrency int
}

var _ IFeedService = &FeedService{}

// NewFeedService creates a FeedService and subscribes it to every
// invalidation event on bus. Start must be called before events are
// processed.
func NewFeedService(
	books BookProvider,
	libraries model.LibraryLister,
	users UserProvider,
	cache FeedCache,
	bus *util.EventBus,
	opts FeedOptions,
) *FeedService {
	if opts.Scorer == nil {
		opts.Scorer = ranking.NewScorer()
	}
	if opts.WarmConcurrency < 1 {
		opts.WarmConcurrency = 1
	}
	s := &FeedService{
		books:           books,
		users:           users,
		resolver:        NewLibraryResolver(libraries),
		cache:           cache,
		scorer:          opts.Scorer,
		warmConcurrency: opts.WarmConcurrency,
	}
	s.queue = NewRecomputeQueue(opts.Workers, opts.QueueSize, s.processJob)

	if bus != nil {
		bus.SubscribeAll(s.HandleEvent)
	}
	return s
}

// Start launches the recompute workers; they stop with ctx.
func (s *FeedService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Wait blocks until every scheduled recomputation has finished.
func (s *FeedService) Wait() {
	s.queue.Wait()
}

// Stop refuses new recomputations, drops queued ones and waits for those
// already running.
func (s *FeedService) Stop() {
	s.queue.Stop()
}

// GetFeed returns at most limit books for user, best first. On a cache hit
// the stored order is kept and book attributes are re-read; books deleted
// since the ranking was stored are skipped. On a miss the feed is computed
// and its top ids stored.
func (s *FeedService) GetFeed(ctx context.Context, user model.User, limit int) ([]model.Book, error) {
	if limit < 0 {
		limit = 0
	}

	if ids, ok := s.cache.GetFeedIDs(ctx, user.ID); ok {
		books, err := s.hydrate(ctx, ids)
		if err != nil {
			return nil, err
		}
		logger.Debug("Feed served from cache",
			zap.String("userID", user.ID),
			zap.Int("cached", len(ids)),
			zap.Int("limit", limit))
		return truncate(books, limit), nil
	}

	ranked, err := s.compute(ctx, user)
	if err != nil {
		return nil, err
	}
	if len(ranked) > 0 {
		s.cache.SetFeedIDs(ctx, user.ID, ranking.IDs(ranked))
	}
	return truncate(ranking.Books(ranked), limit), nil
}

// RecomputeForUser rebuilds user's cached ranking from the source of truth.
// An empty result deletes the entry instead of storing an empty list.
func (s *FeedService) RecomputeForUser(ctx context.Context, user model.User) error {
	start := time.Now()
	ranked, err := s.compute(ctx, user)
	duration := time.Since(start)
	metrics.RecordRecompute(duration, err)
	if err != nil {
		logger.Error("Failed to recompute feed",
			zap.Error(err),
			zap.String("userID", user.ID),
			zap.Duration("duration", duration))
		return err
	}

	if len(ranked) == 0 {
		s.cache.DeleteFeed(ctx, user.ID)
		logger.Info("Feed empty, cache entry removed", zap.String("userID", user.ID))
		return nil
	}

	s.cache.SetFeedIDs(ctx, user.ID, ranking.IDs(ranked))
	logger.Debug("Feed recomputed",
		zap.String("userID", user.ID),
		zap.Int("books", len(ranked)),
		zap.Duration("duration", duration))
	return nil
}

// WarmAll recomputes every user's feed with bounded concurrency. Per-user
// failures are logged and skipped; only failing to list users is returned.
func (s *FeedService) WarmAll(ctx context.Context) error {
	start := time.Now()
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		logger.Error("Failed to list users for feed warm-up", zap.Error(err))
		return err
	}

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.warmConcurrency)
	for _, user := range users {
		user := user
		g.Go(func() error {
			if err := s.RecomputeForUser(gctx, user); err != nil {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.Info("Feed warm-up finished",
		zap.Int("users", len(users)),
		zap.Int64("failed", failed.Load()),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// HandleEvent schedules recomputation for every user the event affects.
// Library-scoped events reach every member of the library and every admin.
func (s *FeedService) HandleEvent(ctx context.Context, event util.Event) error {
	logger.Info("Invalidation event received",
		zap.String("eventID", event.ID),
		zap.String("eventType", string(event.Type)),
		zap.String("libraryID", event.LibraryID),
		zap.String("userID", event.UserID))

	switch {
	case event.Type == util.EventUserLibrariesChanged:
		if event.UserID == "" {
			return fmt.Errorf("%s event without user id", event.Type)
		}
		s.queue.Enqueue(recomputeJob{userID: event.UserID, reason: string(event.Type)})
		return nil

	case event.LibraryScoped():
		users, err := s.users.ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("listing users for %s: %w", event.Type, err)
		}
		scheduled := 0
		for i := range users {
			if !s.resolver.Covers(users[i], event.LibraryID) {
				continue
			}
			user := users[i]
			s.queue.Enqueue(recomputeJob{user: &user, reason: string(event.Type)})
			scheduled++
		}
		logger.Info("Scheduled feed recomputation",
			zap.String("eventID", event.ID),
			zap.String("libraryID", event.LibraryID),
			zap.Int("users", scheduled))
		return nil

	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}
}

func (s *FeedService) processJob(ctx context.Context, job recomputeJob) error {
	if job.user != nil {
		return s.RecomputeForUser(ctx, *job.user)
	}
	user, err := s.users.GetUser(ctx, job.userID)
	if errors.Is(err, feed_errors.ErrUserNotFound) {
		s.cache.DeleteFeed(ctx, job.userID)
		return nil
	}
	if err != nil {
		return err
	}
	return s.RecomputeForUser(ctx, user)
}

func (s *FeedService) compute(ctx context.Context, user model.User) ([]ranking.RankedBook, error) {
	libraryIDs, err := s.resolver.Resolve(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("resolving libraries: %w", err)
	}
	if len(libraryIDs) == 0 {
		return nil, nil
	}
	books, err := s.books.BooksByLibraries(ctx, libraryIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching candidate books: %w", err)
	}
	return s.scorer.Score(books, user.Country), nil
}

// hydrate re-reads the cached ids, keeping their order.
func (s *FeedService) hydrate(ctx context.Context, ids []string) ([]model.Book, error) {
	books, err := s.books.BooksByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching cached books: %w", err)
	}
	byID := make(map[string]model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	ordered := make([]model.Book, 0, len(ids))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			ordered = append(ordered, b)
		}
	}
	return ordered, nil
}

func truncate(books []model.Book, limit int) []model.Book {
	if len(books) > limit {
		return books[:limit]
	}
	return books
}
