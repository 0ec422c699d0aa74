// audit/model.go
package audit

import (
	"time"
)

// AuditLog records one invalidation event as it went through the bus.
type AuditLog struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	LibraryID string    `json:"library_id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Query narrows QueryLogs; empty fields are not filtered on.
type Query struct {
	From      time.Time
	To        time.Time
	EventType string
	LibraryID string
	UserID    string
}
