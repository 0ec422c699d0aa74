package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/bookfeed/db"
	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/ranking"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func yearsAgo(years float64) time.Time {
	return testNow.Add(-time.Duration(years * 365.25 * 24 * float64(time.Hour)))
}

func book(id, libraryID, country string, pages int, age float64) model.Book {
	return model.Book{
		ID:            id,
		Title:         "Title " + id,
		Author:        "Author " + id,
		PublishedDate: yearsAgo(age),
		Pages:         pages,
		AuthorCountry: country,
		LibraryID:     libraryID,
	}
}

type feedFixture struct {
	books     *fakeBooks
	libraries *fakeLibraries
	users     *fakeUsers
	cache     *memCache
	svc       *FeedService
}

func newFeedFixture(t *testing.T, books []model.Book, libraries []string, users []model.User) *feedFixture {
	t.Helper()
	f := &feedFixture{
		books:     &fakeBooks{books: books},
		libraries: &fakeLibraries{ids: libraries},
		users:     &fakeUsers{users: users},
		cache:     newMemCache(),
	}
	f.svc = newTestFeedService(t, f.books, f.libraries, f.users, f.cache, nil)
	return f
}

func newTestFeedService(t *testing.T, books BookProvider, libraries model.LibraryLister, users UserProvider, cache FeedCache, bus *util.EventBus) *FeedService {
	t.Helper()
	svc := NewFeedService(books, libraries, users, cache, bus, FeedOptions{
		Workers:         4,
		QueueSize:       16,
		WarmConcurrency: 4,
		Scorer:          ranking.NewScorer(ranking.WithClock(func() time.Time { return testNow })),
	})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	svc.Start(ctx)
	return svc
}

func ids(books []model.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestGetFeed_SameCountryOutranksWeightedScore(t *testing.T) {
	user := model.User{ID: "u", Country: "USA", Role: model.Member, Libraries: []string{"L"}}
	f := newFeedFixture(t, []model.Book{
		book("P1", "L", "USA", 100, 5),
		book("P2", "L", "UK", 300, 1),
	}, []string{"L"}, []model.User{user})

	feed, err := f.svc.GetFeed(context.Background(), user, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2"}, ids(feed))

	cached, ok := f.cache.entry("u")
	require.True(t, ok)
	assert.Equal(t, []string{"P1", "P2"}, cached)
}

func TestGetFeed_CacheDownStillRanksCorrectly(t *testing.T) {
	user := model.User{ID: "u", Country: "USA", Libraries: []string{"L"}}
	books := &fakeBooks{books: []model.Book{
		book("P1", "L", "USA", 100, 5),
		book("P2", "L", "UK", 300, 1),
		book("P3", "L", "UK", 50, 1),
	}}
	store := db.NewRedisStore(db.RedisOptions{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	t.Cleanup(store.Close)
	cache := util.NewCacheService(store, time.Hour)
	svc := newTestFeedService(t, books, &fakeLibraries{ids: []string{"L"}}, &fakeUsers{users: []model.User{user}}, cache, nil)

	for i := 0; i < 2; i++ {
		feed, err := svc.GetFeed(context.Background(), user, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"P1", "P2", "P3"}, ids(feed))
	}
	assert.NoError(t, svc.RecomputeForUser(context.Background(), user))
}

func TestGetFeed_HitKeepsCachedOrderAndFreshAttributes(t *testing.T) {
	user := model.User{ID: "u", Country: "USA", Libraries: []string{"L"}}
	f := newFeedFixture(t, []model.Book{
		book("a", "L", "UK", 10, 1),
		book("b", "L", "UK", 20, 1),
		book("c", "L", "UK", 30, 1),
	}, []string{"L"}, []model.User{user})
	f.cache.SetFeedIDs(context.Background(), "u", []string{"b", "gone", "a", "c"})

	f.books.mu.Lock()
	f.books.books[0].Title = "Renamed"
	f.books.mu.Unlock()

	feed, err := f.svc.GetFeed(context.Background(), user, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids(feed), "stale order kept, missing book skipped")
	assert.Equal(t, "Renamed", feed[1].Title)

	byLibraries, byIDs := f.books.counts()
	assert.Equal(t, 0, byLibraries)
	assert.Equal(t, 1, byIDs)
}

func TestGetFeed_RespectsLimit(t *testing.T) {
	var books []model.Book
	for i := 0; i < 150; i++ {
		books = append(books, book(fmt.Sprintf("b%03d", i), "L", "UK", i+1, 1))
	}
	user := model.User{ID: "u", Country: "USA", Libraries: []string{"L"}}
	f := newFeedFixture(t, books, []string{"L"}, []model.User{user})
	ctx := context.Background()

	feed, err := f.svc.GetFeed(ctx, user, 10)
	require.NoError(t, err)
	assert.Len(t, feed, 10)
	assert.Equal(t, "b149", feed[0].ID)

	cached, ok := f.cache.entry("u")
	require.True(t, ok)
	assert.Len(t, cached, ranking.MaxRanked, "cache holds the top ranking, not the page")

	feed, err = f.svc.GetFeed(ctx, user, 100)
	require.NoError(t, err)
	assert.Len(t, feed, 100)

	small := newFeedFixture(t, books[:3], []string{"L"}, []model.User{user})
	feed, err = small.svc.GetFeed(ctx, user, 10)
	require.NoError(t, err)
	assert.Len(t, feed, 3)
}

func TestGetFeed_AdminWithoutMembershipsSeesEveryLibrary(t *testing.T) {
	admin := model.User{ID: "admin", Country: "USA", Role: model.Admin, Libraries: []string{}}
	f := newFeedFixture(t, []model.Book{
		book("a", "L1", "UK", 10, 1),
		book("b", "L2", "UK", 20, 1),
		book("c", "L3", "USA", 5, 1),
	}, []string{"L1", "L2", "L3"}, []model.User{admin})

	feed, err := f.svc.GetFeed(context.Background(), admin, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(feed))
}

func TestGetFeed_NoLibrariesIsEmptyNotError(t *testing.T) {
	user := model.User{ID: "u", Country: "USA"}
	f := newFeedFixture(t, []model.Book{book("a", "L", "USA", 10, 1)}, []string{"L"}, []model.User{user})

	feed, err := f.svc.GetFeed(context.Background(), user, 10)
	require.NoError(t, err)
	assert.Empty(t, feed)
	_, ok := f.cache.entry("u")
	assert.False(t, ok, "empty rankings are never stored")
}

func TestGetFeed_SourceFailurePropagates(t *testing.T) {
	user := model.User{ID: "u", Libraries: []string{"L"}}
	f := newFeedFixture(t, nil, []string{"L"}, []model.User{user})
	f.books.failFor = map[string]bool{"L": true}

	_, err := f.svc.GetFeed(context.Background(), user, 10)
	assert.ErrorIs(t, err, feed_errors.ErrDatabaseOperation)

	admin := model.User{ID: "admin", Role: model.Admin}
	f.libraries.err = feed_errors.ErrDatabaseOperation
	_, err = f.svc.GetFeed(context.Background(), admin, 10)
	assert.ErrorIs(t, err, feed_errors.ErrDatabaseOperation)
}

func TestRecomputeForUser_Idempotent(t *testing.T) {
	user := model.User{ID: "u", Country: "UK", Libraries: []string{"L"}}
	f := newFeedFixture(t, []model.Book{
		book("a", "L", "UK", 10, 1),
		book("b", "L", "UK", 10, 1),
		book("c", "L", "USA", 400, 3),
	}, []string{"L"}, []model.User{user})
	ctx := context.Background()

	require.NoError(t, f.svc.RecomputeForUser(ctx, user))
	first, _ := f.cache.entry("u")
	require.NoError(t, f.svc.RecomputeForUser(ctx, user))
	second, _ := f.cache.entry("u")

	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, first, second)
}

func TestEmptiedMembershipsDeleteEntryAndNextReadRecomputes(t *testing.T) {
	user := model.User{ID: "u", Country: "UK", Libraries: []string{"L"}}
	f := newFeedFixture(t, []model.Book{book("a", "L", "UK", 10, 1)}, []string{"L"}, []model.User{user})
	ctx := context.Background()

	_, err := f.svc.GetFeed(ctx, user, 10)
	require.NoError(t, err)
	_, ok := f.cache.entry("u")
	require.True(t, ok)

	f.users.setLibraries("u", []string{})
	require.NoError(t, f.svc.HandleEvent(ctx, util.NewUserLibrariesChangedEvent("u")))
	f.svc.Wait()

	_, ok = f.cache.entry("u")
	assert.False(t, ok, "entry deleted, not stored empty")

	before, _ := f.books.counts()
	user.Libraries = []string{}
	feed, err := f.svc.GetFeed(ctx, user, 10)
	require.NoError(t, err)
	assert.Empty(t, feed)

	user.Libraries = []string{"L"}
	feed, err = f.svc.GetFeed(ctx, user, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(feed))
	after, _ := f.books.counts()
	assert.Equal(t, before+1, after, "read after deletion recomputed from the catalog")
}

func TestHandleEvent_LibraryScopedReachesMembersAndAdmins(t *testing.T) {
	users := []model.User{
		{ID: "m1", Country: "USA", Libraries: []string{"L"}},
		{ID: "m2", Country: "UK", Libraries: []string{"L2", "L"}},
		{ID: "admin", Country: "UK", Role: model.Admin},
		{ID: "outsider", Country: "USA", Libraries: []string{"L2"}},
	}
	f := newFeedFixture(t, []model.Book{
		book("a", "L", "USA", 10, 1),
		book("b", "L2", "UK", 10, 1),
	}, []string{"L", "L2"}, users)

	require.NoError(t, f.svc.HandleEvent(context.Background(), util.NewLibraryEvent(util.EventBookDeleted, "L")))
	f.svc.Wait()

	touched := f.cache.touchedUsers()
	assert.Equal(t, map[string]int{"m1": 1, "m2": 1, "admin": 1}, touched)
	assert.NotContains(t, touched, "outsider")
}

func TestHandleEvent_ThroughBus(t *testing.T) {
	users := []model.User{
		{ID: "m1", Libraries: []string{"L"}},
		{ID: "admin", Role: model.Admin},
		{ID: "outsider", Libraries: []string{"L2"}},
	}
	books := &fakeBooks{books: []model.Book{book("a", "L", "USA", 10, 1)}}
	cache := newMemCache()
	bus := util.NewEventBus()
	newTestFeedService(t, books, &fakeLibraries{ids: []string{"L", "L2"}}, &fakeUsers{users: users}, cache, bus)

	ctx, cancel := context.WithCancel(context.Background())
	bus.Publish(ctx, util.NewLibraryEvent(util.EventBookCreated, "L"))
	cancel()

	assert.Eventually(t, func() bool {
		touched := cache.touchedUsers()
		return touched["m1"] == 1 && touched["admin"] == 1
	}, time.Second, 5*time.Millisecond)
	assert.NotContains(t, cache.touchedUsers(), "outsider")
}

func TestHandleEvent_DeletedLibraryRefreshesExMembers(t *testing.T) {
	users := []model.User{{ID: "m1", Libraries: []string{"L", "L2"}}}
	f := newFeedFixture(t, []model.Book{book("a", "L", "USA", 10, 1), book("b", "L2", "USA", 5, 1)}, []string{"L", "L2"}, users)
	ctx := context.Background()
	_, err := f.svc.GetFeed(ctx, users[0], 10)
	require.NoError(t, err)

	f.books.remove("a")
	f.libraries.ids = []string{"L2"}
	require.NoError(t, f.svc.HandleEvent(ctx, util.NewLibraryEvent(util.EventLibraryDeleted, "L")))
	f.svc.Wait()

	cached, ok := f.cache.entry("m1")
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, cached)
}

func TestHandleEvent_UnknownUserDropsEntry(t *testing.T) {
	f := newFeedFixture(t, nil, nil, nil)
	f.cache.SetFeedIDs(context.Background(), "ghost", []string{"a"})

	require.NoError(t, f.svc.HandleEvent(context.Background(), util.NewUserLibrariesChangedEvent("ghost")))
	f.svc.Wait()

	_, ok := f.cache.entry("ghost")
	assert.False(t, ok)
}

func TestHandleEvent_Errors(t *testing.T) {
	f := newFeedFixture(t, nil, nil, nil)
	ctx := context.Background()

	assert.Error(t, f.svc.HandleEvent(ctx, util.Event{Type: "book.archived"}))
	assert.Error(t, f.svc.HandleEvent(ctx, util.Event{Type: util.EventUserLibrariesChanged}))

	f.users.listErr = feed_errors.ErrDatabaseOperation
	err := f.svc.HandleEvent(ctx, util.NewLibraryEvent(util.EventLibraryUpdated, "L"))
	assert.ErrorIs(t, err, feed_errors.ErrDatabaseOperation)
}

func TestWarmAll_ToleratesPerUserFailures(t *testing.T) {
	users := []model.User{
		{ID: "u1", Libraries: []string{"L"}},
		{ID: "u2", Libraries: []string{"broken"}},
		{ID: "u3", Libraries: []string{"L"}},
		{ID: "u4"},
	}
	f := newFeedFixture(t, []model.Book{book("a", "L", "USA", 10, 1)}, []string{"L", "broken"}, users)
	f.books.failFor = map[string]bool{"broken": true}

	require.NoError(t, f.svc.WarmAll(context.Background()))

	for _, id := range []string{"u1", "u3"} {
		cached, ok := f.cache.entry(id)
		require.True(t, ok, id)
		assert.Equal(t, []string{"a"}, cached)
	}
	_, ok := f.cache.entry("u2")
	assert.False(t, ok)
	_, ok = f.cache.entry("u4")
	assert.False(t, ok)
}

func TestWarmAll_ListFailure(t *testing.T) {
	f := newFeedFixture(t, nil, nil, nil)
	f.users.listErr = feed_errors.ErrDatabaseOperation
	assert.ErrorIs(t, f.svc.WarmAll(context.Background()), feed_errors.ErrDatabaseOperation)
}

// gatedBooks serves a stale catalog to the first caller and holds it until
// released, so a later fresh computation finishes first.
type gatedBooks struct {
	mu      sync.Mutex
	calls   int
	stale   []model.Book
	fresh   []model.Book
	entered chan struct{}
	release chan struct{}
}

func (g *gatedBooks) BooksByLibraries(context.Context, []string) ([]model.Book, error) {
	g.mu.Lock()
	g.calls++
	first := g.calls == 1
	g.mu.Unlock()
	if first {
		close(g.entered)
		<-g.release
		return g.stale, nil
	}
	return g.fresh, nil
}

func (g *gatedBooks) BooksByIDs(context.Context, []string) ([]model.Book, error) {
	return nil, nil
}

func TestRecomputeForUser_LastWriteWins(t *testing.T) {
	user := model.User{ID: "u", Libraries: []string{"L"}}
	books := &gatedBooks{
		stale:   []model.Book{book("old", "L", "UK", 10, 1)},
		fresh:   []model.Book{book("new", "L", "UK", 10, 1)},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	cache := newMemCache()
	svc := newTestFeedService(t, books, &fakeLibraries{ids: []string{"L"}}, &fakeUsers{users: []model.User{user}}, cache, nil)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- svc.RecomputeForUser(ctx, user) }()
	<-books.entered

	require.NoError(t, svc.RecomputeForUser(ctx, user))
	cached, _ := cache.entry("u")
	assert.Equal(t, []string{"new"}, cached)

	close(books.release)
	require.NoError(t, <-done)
	cached, _ = cache.entry("u")
	assert.Equal(t, []string{"old"}, cached, "the slower computation overwrites the fresher one")
}
