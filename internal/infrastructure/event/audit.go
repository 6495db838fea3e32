package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/storekit/backend/internal/domain/shared"
)

// AuditHandler writes every domain event to the log, giving operators
// a trail of state transitions without a dedicated event store.
type AuditHandler struct {
	logger *zap.Logger
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(logger *zap.Logger) *AuditHandler {
	return &AuditHandler{logger: logger}
}

// Handle logs the event
func (h *AuditHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.String("tenant_id", event.TenantID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns an empty slice: the audit trail covers all events
func (h *AuditHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*AuditHandler)(nil)
