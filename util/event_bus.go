// util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/metrics"
)

// EventType names a change that can make cached feeds stale.
type EventType string

const (
	EventBookCreated          EventType = "book.created"
	EventBookDeleted          EventType = "book.deleted"
	EventLibraryUpdated       EventType = "library.updated"
	EventLibraryDeleted       EventType = "library.deleted"
	EventUserLibrariesChanged EventType = "user.libraries_changed"
)

// AllEventTypes lists every event the bus carries.
var AllEventTypes = []EventType{
	EventBookCreated,
	EventBookDeleted,
	EventLibraryUpdated,
	EventLibraryDeleted,
	EventUserLibrariesChanged,
}

// Event is published after the change it describes has been committed.
// Library-scoped events carry LibraryID; UserLibrariesChanged carries UserID.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	LibraryID  string    `json:"library_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewLibraryEvent(eventType EventType, libraryID string) Event {
	return Event{ID: uuid.NewString(), Type: eventType, LibraryID: libraryID, OccurredAt: time.Now()}
}

func NewUserLibrariesChangedEvent(userID string) Event {
	return Event{ID: uuid.NewString(), Type: EventUserLibrariesChanged, UserID: userID, OccurredAt: time.Now()}
}

// LibraryScoped reports whether the event affects every user of a library.
func (e Event) LibraryScoped() bool {
	switch e.Type {
	case EventBookCreated, EventBookDeleted, EventLibraryUpdated, EventLibraryDeleted:
		return true
	default:
		return false
	}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

// EventBus fans events out to subscribers. Delivery is fire-and-forget and
// at most once; handlers run on their own goroutines in no particular order.
type EventBus struct {
	subscribers map[EventType][]EventHandler
	mu          sync.RWMutex
	errorChan   chan error
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[EventType][]EventHandler),
		errorChan:   make(chan error, 100),
	}
}

// Subscribe adds a new subscriber for a specific event type
func (eb *EventBus) Subscribe(eventType EventType, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

// SubscribeAll registers handler for every event type.
func (eb *EventBus) SubscribeAll(handler EventHandler) {
	for _, t := range AllEventTypes {
		eb.Subscribe(t, handler)
	}
}

// Publish hands the event to every subscriber. Handlers keep the values of
// ctx but not its cancellation, so a finished request does not abort the
// work it triggered.
func (eb *EventBus) Publish(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	metrics.InvalidationEvents.WithLabelValues(string(event.Type)).Inc()

	eb.mu.RLock()
	handlers := append([]EventHandler(nil), eb.subscribers[event.Type]...)
	eb.mu.RUnlock()

	if len(handlers) == 0 {
		logger.Debug("No subscribers for event", zap.String("eventType", string(event.Type)))
		return
	}

	detached := context.WithoutCancel(ctx)
	for _, handler := range handlers {
		go func(h EventHandler) {
			if err := h(detached, event); err != nil {
				select {
				case eb.errorChan <- fmt.Errorf("event handler error (%s %s): %w", event.Type, event.ID, err):
				default:
					logger.Error("Error channel full, logging event handler error",
						zap.Error(err),
						zap.String("eventType", string(event.Type)))
				}
			}
		}(handler)
	}
}

// Start begins processing events and handling errors
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}
