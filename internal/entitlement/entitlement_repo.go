package entitlement

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SummaryRow is the joined read model behind the summary endpoint.
type SummaryRow struct {
	LeaveTypeID uuid.UUID
	Name        string
	Quota       int
	Used        int
}

//go:generate mockgen -source=entitlement_repo.go -destination=mock/entitlement_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ent *LeaveEntitlement) error
	// FindForUpdate reads the entitlement row with a row lock. It must run
	// inside the transaction installed via WithTx; the lock spans the caller's
	// follow-up writes.
	FindForUpdate(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveEntitlement, error)
	// AddUsedDays increments used_days in place and reports how many rows
	// matched, so the caller can treat 0 as a missing entitlement.
	AddUsedDays(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int) (int64, error)
	SummaryByEmployee(ctx context.Context, employeeID string, year int) ([]SummaryRow, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

func (r *repository) Create(ctx context.Context, ent *LeaveEntitlement) error {
	return r.db.WithContext(ctx).Create(ent).Error
}

func (r *repository) FindForUpdate(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveEntitlement, error) {
	query := `
SELECT id, employee_id, leave_type_id, year, total_days, used_days
FROM leave_entitlements
WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
FOR UPDATE
`
	row := r.querier().QueryRowContext(ctx, query, employeeID, leaveTypeID, year)

	var ent LeaveEntitlement
	if err := row.Scan(
		&ent.ID,
		&ent.EmployeeID,
		&ent.LeaveTypeID,
		&ent.Year,
		&ent.TotalDays,
		&ent.UsedDays,
	); err != nil {
		return nil, err
	}
	return &ent, nil
}

func (r *repository) AddUsedDays(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int) (int64, error) {
	query := `
UPDATE leave_entitlements
SET used_days = used_days + $4, updated_at = NOW()
WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
`
	res, err := r.execer().ExecContext(ctx, query, employeeID, leaveTypeID, year, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) SummaryByEmployee(ctx context.Context, employeeID string, year int) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := r.db.WithContext(ctx).
		Table("leave_entitlements AS le").
		Select("lt.id AS leave_type_id, lt.name AS name, le.total_days AS quota, le.used_days AS used").
		Joins("JOIN leave_types lt ON lt.id = le.leave_type_id").
		Where("le.employee_id = ?", employeeID).
		Where("le.year = ?", year).
		Order("lt.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

func (r *repository) querier() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
