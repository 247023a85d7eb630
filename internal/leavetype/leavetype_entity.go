package leavetype

import (
	"time"

	"github.com/google/uuid"
)

// LeaveType is a catalog entry for a category of absence (sick, vacation,
// personal, ...). Quotas live on the entitlement, not here.
type LeaveType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:uq_leave_type_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (LeaveType) TableName() string { return "leave_types" }
