package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/bookfeed/audit"
	test_mock "github.com/dev-mohitbeniwal/bookfeed/test/mock"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

func TestAuditSubscriber_LogsEveryEvent(t *testing.T) {
	auditService := new(test_mock.MockAuditService)
	logged := make(chan audit.AuditLog, 2)
	auditService.On("LogEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { logged <- args.Get(1).(audit.AuditLog) }).
		Return(nil)

	bus := util.NewEventBus()
	NewAuditSubscriber(auditService, bus)

	event := util.NewLibraryEvent(util.EventLibraryDeleted, "L1")
	bus.Publish(context.Background(), event)

	select {
	case got := <-logged:
		assert.Equal(t, event.ID, got.EventID)
		assert.Equal(t, "library.deleted", got.EventType)
		assert.Equal(t, "L1", got.LibraryID)
		assert.True(t, event.OccurredAt.Equal(got.Timestamp))
	case <-time.After(time.Second):
		t.Fatal("event was not audited")
	}
}
