package employee

import (
	"time"

	"github.com/google/uuid"

	"github.com/SopitaJW/leave-management/internal/department"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName    string     `gorm:"size:100;not null"`
	LastName     string     `gorm:"size:100;not null"`
	Email        string     `gorm:"size:255;uniqueIndex:uq_employee_email"`
	Position     string     `gorm:"size:100"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	// ManagerID is a back reference used for team lookups only; the manager
	// does not own the employee row.
	ManagerID *uuid.UUID `gorm:"type:uuid;index:idx_employees_manager"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Department *department.Department `gorm:"foreignKey:DepartmentID"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
