package events

import "time"

const LeaveDecidedTopic = "leave.request.decision.v1"

const (
	EventTypeLeaveApproved = "leave_approved"
	EventTypeLeaveRejected = "leave_rejected"
)

// LeaveDecidedEvent is emitted (via the outbox) whenever a leave request
// reaches a terminal state. Statuses use the internal enum form.
type LeaveDecidedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	EmployeeID  string    `json:"employee_id"`
	LeaveTypeID string    `json:"leave_type_id"`
	Days        int       `json:"days"`
	Status      string    `json:"status"`
	DecidedBy   string    `json:"decided_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
