package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter narrows a request listing. All set fields must match (conjunctive).
type Filter struct {
	Search   string // case-insensitive substring over reason, type name and (team scope) employee name
	Status   string // internal status, "" for all
	TypeName string // exact leave type name, "" for all
}

// HistoryRow is the self-scope read model, joined with the leave type name.
type HistoryRow struct {
	ID              uuid.UUID
	RequestNumber   string
	LeaveTypeName   string
	StartDate       time.Time
	EndDate         time.Time
	Days            int
	Status          string
	Reason          string
	RequestDate     time.Time
	ApprovalDate    *time.Time
	ApproverComment *string
}

// TeamRow is the manager-scope read model, additionally joined with the
// employee and department.
type TeamRow struct {
	ID              uuid.UUID
	RequestNumber   string
	EmployeeID      uuid.UUID
	EmployeeName    string
	Department      string
	LeaveTypeName   string
	StartDate       time.Time
	EndDate         time.Time
	Days            int
	Status          string
	Reason          string
	RequestDate     time.Time
	ApprovalDate    *time.Time
	ApproverComment *string
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lr *LeaveRequest) error
	// FindByIDForUpdate locks the request row for the span of the enclosing
	// transaction. Returns sql.ErrNoRows when the id is unknown.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	// UpdateDecision applies the terminal transition conditionally: the row is
	// only touched while still in fromStatus. The affected-row count lets the
	// caller detect a lost race.
	UpdateDecision(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, comment *string, approvalDate time.Time) (int64, error)
	FindByEmployee(ctx context.Context, employeeID string, f Filter) ([]HistoryRow, error)
	FindByManager(ctx context.Context, managerID string, f Filter) ([]TeamRow, error)
	FindRecentByManager(ctx context.Context, managerID string, limit int) ([]TeamRow, error)
	CountPendingByManager(ctx context.Context, managerID string) (int64, error)
	CountOnLeave(ctx context.Context, managerID string, day time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	query := `
INSERT INTO leave_requests (
	id, request_number, employee_id, leave_type_id, approver_id,
	start_date, end_date, reason, request_date, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
`
	_, err := r.execer().ExecContext(
		ctx, query,
		lr.ID, lr.RequestNumber, lr.EmployeeID, lr.LeaveTypeID, lr.ApproverID,
		lr.StartDate, lr.EndDate, lr.Reason, lr.RequestDate, lr.Status,
	)
	return err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	query := `
SELECT id, request_number, employee_id, leave_type_id, approver_id,
       start_date, end_date, reason, request_date, status,
       approval_date, approver_comment
FROM leave_requests
WHERE id = $1
FOR UPDATE
`
	row := r.querier().QueryRowContext(ctx, query, id)

	var (
		lr       LeaveRequest
		approver uuid.NullUUID
		decided  sql.NullTime
		comment  sql.NullString
	)
	if err := row.Scan(
		&lr.ID, &lr.RequestNumber, &lr.EmployeeID, &lr.LeaveTypeID, &approver,
		&lr.StartDate, &lr.EndDate, &lr.Reason, &lr.RequestDate, &lr.Status,
		&decided, &comment,
	); err != nil {
		return nil, err
	}

	if approver.Valid {
		lr.ApproverID = &approver.UUID
	}
	if decided.Valid {
		t := decided.Time
		lr.ApprovalDate = &t
	}
	if comment.Valid {
		v := comment.String
		lr.ApproverComment = &v
	}
	return &lr, nil
}

func (r *repository) UpdateDecision(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, comment *string, approvalDate time.Time) (int64, error) {
	query := `
UPDATE leave_requests
SET status = $2, approver_comment = $3, approval_date = $4, updated_at = NOW()
WHERE id = $1 AND status = $5
`
	res, err := r.execer().ExecContext(ctx, query, id, toStatus, comment, approvalDate, fromStatus)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, f Filter) ([]HistoryRow, error) {
	q := r.db.WithContext(ctx).
		Table("leave_requests AS lr").
		Select(`lr.id, lr.request_number, lt.name AS leave_type_name,
			lr.start_date, lr.end_date,
			(lr.end_date - lr.start_date) + 1 AS days,
			lr.status, lr.reason, lr.request_date,
			lr.approval_date, lr.approver_comment`).
		Joins("JOIN leave_types lt ON lt.id = lr.leave_type_id").
		Where("lr.employee_id = ?", employeeID)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("(lr.reason ILIKE ? OR lt.name ILIKE ?)", like, like)
	}
	if f.Status != "" {
		q = q.Where("lr.status = ?", f.Status)
	}
	if f.TypeName != "" {
		q = q.Where("lt.name = ?", f.TypeName)
	}

	var rows []HistoryRow
	err := q.Order("lr.request_date DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string, f Filter) ([]TeamRow, error) {
	q := r.teamQuery(ctx, managerID)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			"(lr.reason ILIKE ? OR lt.name ILIKE ? OR e.first_name ILIKE ? OR e.last_name ILIKE ?)",
			like, like, like, like,
		)
	}
	if f.Status != "" {
		q = q.Where("lr.status = ?", f.Status)
	}
	if f.TypeName != "" {
		q = q.Where("lt.name = ?", f.TypeName)
	}

	var rows []TeamRow
	err := q.Order("lr.request_date DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) FindRecentByManager(ctx context.Context, managerID string, limit int) ([]TeamRow, error) {
	var rows []TeamRow
	err := r.teamQuery(ctx, managerID).
		Order("lr.request_date DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) teamQuery(ctx context.Context, managerID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leave_requests AS lr").
		Select(`lr.id, lr.request_number, lr.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			COALESCE(d.name, '') AS department,
			lt.name AS leave_type_name,
			lr.start_date, lr.end_date,
			(lr.end_date - lr.start_date) + 1 AS days,
			lr.status, lr.reason, lr.request_date,
			lr.approval_date, lr.approver_comment`).
		Joins("JOIN employees e ON e.id = lr.employee_id").
		Joins("LEFT JOIN departments d ON d.id = e.department_id").
		Joins("JOIN leave_types lt ON lt.id = lr.leave_type_id").
		Where("e.manager_id = ?", managerID)
}

func (r *repository) CountPendingByManager(ctx context.Context, managerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leave_requests AS lr").
		Joins("JOIN employees e ON e.id = lr.employee_id").
		Where("e.manager_id = ?", managerID).
		Where("lr.status = ?", StatusPending).
		Count(&count).Error
	return count, err
}

func (r *repository) CountOnLeave(ctx context.Context, managerID string, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leave_requests AS lr").
		Joins("JOIN employees e ON e.id = lr.employee_id").
		Where("e.manager_id = ?", managerID).
		Where("lr.status = ?", StatusApproved).
		Where("? BETWEEN lr.start_date AND lr.end_date", day.Format("2006-01-02")).
		Distinct("lr.employee_id").
		Count(&count).Error
	return count, err
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
