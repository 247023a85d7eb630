package consumer

import (
	"context"
	"encoding/json"

	"github.com/SopitaJW/leave-management/internal/bootstrap"
	"github.com/SopitaJW/leave-management/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecisions fans leave decision events out to the audit trail.
// Notification delivery (email, chat) hangs off the same stream, so the
// consumer commits only after the event has been recorded.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decisions")
	log.Info("leave decisions consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decisions consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Malformed payloads are dropped; redelivery cannot fix them.
			log.Error("decode leave decision event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  event.EventType,
			Message: "leave request " + event.RequestID + " decided",
			Meta: map[string]any{
				"request_id":    event.RequestID,
				"employee_id":   event.EmployeeID,
				"leave_type_id": event.LeaveTypeID,
				"days":          event.Days,
				"status":        event.Status,
				"decided_by":    event.DecidedBy,
				"occurred_at":   event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision event processed",
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
		)
	}
}
