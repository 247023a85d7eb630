package leave

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestNumber string    `gorm:"size:20;uniqueIndex:uq_leave_request_number"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`
	LeaveTypeID   uuid.UUID `gorm:"type:uuid;not null"`
	// ApproverID defaults to the employee's manager at submission time.
	ApproverID *uuid.UUID `gorm:"type:uuid"`
	StartDate  time.Time  `gorm:"type:date;not null"`
	EndDate    time.Time  `gorm:"type:date;not null"`
	Reason     string     `gorm:"type:text;not null"`

	RequestDate time.Time `gorm:"type:date;not null"`
	Status      string    `gorm:"size:20;not null;default:'PENDING';index:idx_leave_requests_status"`

	// Set exactly once, on the transition to a terminal state.
	ApprovalDate    *time.Time `gorm:"type:date"`
	ApproverComment *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string { return "leave_requests" }

// Days is the inclusive span of the request in whole days.
func (l LeaveRequest) Days() int {
	return DaysBetween(l.StartDate, l.EndDate)
}

func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
