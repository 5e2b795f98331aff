package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/field-tracker/internal/events"
)

// StartAuditWorker subscribes a logging handler to the full employee
// event stream so every mutation leaves a trace in the service logs.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	handler := func(ctx context.Context, event events.Event) error {
		logger.Info("employee event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Int64("employee_id", event.EmployeeID),
			zap.Time("occurred_at", event.Timestamp),
			zap.Any("payload", event.Payload),
		)
		return nil
	}
	for _, eventType := range events.AllEventTypes() {
		dispatcher.Subscribe(eventType, handler)
	}
}
