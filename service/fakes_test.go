package service

import (
	"context"
	"sync"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	"github.com/dev-mohitbeniwal/bookfeed/model"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// fakeBooks is an in-memory catalog. Books are returned in slice order.
type fakeBooks struct {
	mu          sync.Mutex
	books       []model.Book
	failFor     map[string]bool
	byLibraries int
	byIDs       int
}

func (f *fakeBooks) BooksByLibraries(_ context.Context, libraryIDs []string) ([]model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byLibraries++
	wanted := make(map[string]bool, len(libraryIDs))
	for _, id := range libraryIDs {
		if f.failFor[id] {
			return nil, feed_errors.ErrDatabaseOperation
		}
		wanted[id] = true
	}
	out := []model.Book{}
	for _, b := range f.books {
		if wanted[b.LibraryID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBooks) BooksByIDs(_ context.Context, ids []string) ([]model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byIDs++
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := []model.Book{}
	// reverse order so callers cannot rely on it
	for i := len(f.books) - 1; i >= 0; i-- {
		if wanted[f.books[i].ID] {
			out = append(out, f.books[i])
		}
	}
	return out, nil
}

func (f *fakeBooks) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.books {
		if b.ID == id {
			f.books = append(f.books[:i], f.books[i+1:]...)
			return
		}
	}
}

func (f *fakeBooks) counts() (byLibraries, byIDs int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byLibraries, f.byIDs
}

type fakeLibraries struct {
	ids []string
	err error
}

func (f *fakeLibraries) ListLibraryIDs(context.Context) ([]string, error) {
	return f.ids, f.err
}

type fakeUsers struct {
	mu      sync.Mutex
	users   []model.User
	listErr error
}

func (f *fakeUsers) ListUsers(context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.User(nil), f.users...), nil
}

func (f *fakeUsers) GetUser(_ context.Context, userID string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return model.User{}, feed_errors.ErrUserNotFound
}

func (f *fakeUsers) setLibraries(userID string, libraryIDs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == userID {
			f.users[i].Libraries = libraryIDs
		}
	}
}

// memCache records every write so tests can tell which users were touched.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]string
	touched map[string]int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]string{}, touched: map[string]int{}}
}

func (c *memCache) GetFeedIDs(_ context.Context, userID string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids, ok := c.entries[userID]
	return ids, ok
}

func (c *memCache) SetFeedIDs(_ context.Context, userID string, ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = append([]string(nil), ids...)
	c.touched[userID]++
}

func (c *memCache) DeleteFeed(_ context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	c.touched[userID]++
}

func (c *memCache) entry(userID string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids, ok := c.entries[userID]
	return ids, ok
}

func (c *memCache) touchedUsers() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.touched))
	for k, v := range c.touched {
		out[k] = v
	}
	return out
}

// recordingPublisher captures published events in order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []util.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event util.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) published() []util.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]util.Event(nil), p.events...)
}
