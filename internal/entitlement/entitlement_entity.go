package entitlement

import (
	"time"

	"github.com/google/uuid"
)

// LeaveEntitlement is the per (employee, leave type, year) allowance record.
// UsedDays is only ever mutated by the approval transition; RemainingDays is
// derived, never stored.
type LeaveEntitlement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_entitlement_employee_type_year"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_entitlement_employee_type_year"`
	Year        int       `gorm:"not null;uniqueIndex:uq_entitlement_employee_type_year"`
	TotalDays   int       `gorm:"not null"`
	UsedDays    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LeaveEntitlement) TableName() string { return "leave_entitlements" }

func (e LeaveEntitlement) RemainingDays() int {
	return e.TotalDays - e.UsedDays
}
