// service/audit_subscriber.go
package service

import (
	"context"

	"github.com/dev-mohitbeniwal/bookfeed/audit"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// AuditSubscriber writes every invalidation event to the audit trail.
// Failures go back to the bus, which logs them.
type AuditSubscriber struct {
	auditService audit.Service
}

func NewAuditSubscriber(auditService audit.Service, bus *util.EventBus) *AuditSubscriber {
	s := &AuditSubscriber{auditService: auditService}
	bus.SubscribeAll(s.handleEvent)
	return s
}

func (s *AuditSubscriber) handleEvent(ctx context.Context, event util.Event) error {
	return s.auditService.LogEvent(ctx, audit.AuditLog{
		EventID:   event.ID,
		EventType: string(event.Type),
		LibraryID: event.LibraryID,
		UserID:    event.UserID,
		Timestamp: event.OccurredAt,
	})
}
