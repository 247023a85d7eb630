package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/SopitaJW/leave-management/internal/employee"
	"github.com/SopitaJW/leave-management/internal/entitlement"
	entitlementerrors "github.com/SopitaJW/leave-management/internal/entitlement/errors"
	"github.com/SopitaJW/leave-management/internal/leave"
	leaveerrors "github.com/SopitaJW/leave-management/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveRepository struct {
	withTxFn            func(tx *sql.Tx) leave.Repository
	createFn            func(ctx context.Context, lr *leave.LeaveRequest) error
	findByIDForUpdateFn func(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error)
	updateDecisionFn    func(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, comment *string, approvalDate time.Time) (int64, error)
	findByEmployeeFn    func(ctx context.Context, employeeID string, f leave.Filter) ([]leave.HistoryRow, error)
	findByManagerFn     func(ctx context.Context, managerID string, f leave.Filter) ([]leave.TeamRow, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, lr *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, lr)
	}
	return nil
}

func (f *fakeLeaveRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
	if f.findByIDForUpdateFn != nil {
		return f.findByIDForUpdateFn(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeLeaveRepository) UpdateDecision(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, comment *string, approvalDate time.Time) (int64, error) {
	if f.updateDecisionFn != nil {
		return f.updateDecisionFn(ctx, id, fromStatus, toStatus, comment, approvalDate)
	}
	return 1, nil
}

func (f *fakeLeaveRepository) FindByEmployee(ctx context.Context, employeeID string, filter leave.Filter) ([]leave.HistoryRow, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID, filter)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByManager(ctx context.Context, managerID string, filter leave.Filter) ([]leave.TeamRow, error) {
	if f.findByManagerFn != nil {
		return f.findByManagerFn(ctx, managerID, filter)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindRecentByManager(ctx context.Context, managerID string, limit int) ([]leave.TeamRow, error) {
	return nil, nil
}

func (f *fakeLeaveRepository) CountPendingByManager(ctx context.Context, managerID string) (int64, error) {
	return 0, nil
}

func (f *fakeLeaveRepository) CountOnLeave(ctx context.Context, managerID string, day time.Time) (int64, error) {
	return 0, nil
}

type fakeEntitlementRepository struct {
	withTxFn        func(tx *sql.Tx) entitlement.Repository
	findForUpdateFn func(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*entitlement.LeaveEntitlement, error)
	addUsedDaysFn   func(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int) (int64, error)
}

func (f *fakeEntitlementRepository) WithTx(tx *sql.Tx) entitlement.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEntitlementRepository) Create(ctx context.Context, ent *entitlement.LeaveEntitlement) error {
	return nil
}

func (f *fakeEntitlementRepository) FindForUpdate(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*entitlement.LeaveEntitlement, error) {
	if f.findForUpdateFn != nil {
		return f.findForUpdateFn(ctx, employeeID, leaveTypeID, year)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeEntitlementRepository) AddUsedDays(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int) (int64, error) {
	if f.addUsedDaysFn != nil {
		return f.addUsedDaysFn(ctx, employeeID, leaveTypeID, year, days)
	}
	return 1, nil
}

func (f *fakeEntitlementRepository) SummaryByEmployee(ctx context.Context, employeeID string, year int) ([]entitlement.SummaryRow, error) {
	return nil, nil
}

type fakeEmployeeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &employee.Employee{ID: uuid.MustParse(id)}, nil
}

func (f *fakeEmployeeRepository) FindByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) CountByManager(ctx context.Context, managerID string) (int64, error) {
	return 0, nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type serviceDeps struct {
	db           *sql.DB
	sqlMock      sqlmock.Sqlmock
	service      leave.Service
	repo         *fakeLeaveRepository
	entitlements *fakeEntitlementRepository
	employees    *fakeEmployeeRepository
	counter      *fakeCounterRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	entitlements := &fakeEntitlementRepository{}
	employees := &fakeEmployeeRepository{}
	counterRepo := &fakeCounterRepository{}
	svc := leave.NewService(db, repo, entitlements, employees, counterRepo)

	return &serviceDeps{
		db:           db,
		sqlMock:      sqlMock,
		service:      svc,
		repo:         repo,
		entitlements: entitlements,
		employees:    employees,
		counter:      counterRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func entitlementWith(employeeID, leaveTypeID uuid.UUID, total, used int) *entitlement.LeaveEntitlement {
	return &entitlement.LeaveEntitlement{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		Year:        time.Now().UTC().Year(),
		TotalDays:   total,
		UsedDays:    used,
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()
	managerID := uuid.New()

	validReq := func() leave.CreateLeaveRequest {
		return leave.CreateLeaveRequest{
			EmployeeID:  employeeID.String(),
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2026-09-07",
			EndDate:     "2026-09-09",
			Reason:      "family matters",
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			assert.Equal(t, employeeID.String(), id)
			return &employee.Employee{ID: employeeID, ManagerID: &managerID}, nil
		}
		deps.entitlements.findForUpdateFn = func(ctx context.Context, eID, ltID uuid.UUID, year int) (*entitlement.LeaveEntitlement, error) {
			assert.Equal(t, employeeID, eID)
			assert.Equal(t, leaveTypeID, ltID)
			assert.Equal(t, time.Now().UTC().Year(), year)
			return entitlementWith(eID, ltID, 12, 2), nil
		}

		var created *leave.LeaveRequest
		deps.repo.createFn = func(ctx context.Context, lr *leave.LeaveRequest) error {
			created = lr
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Create(ctx, employeeID.String(), validReq())

		assert.NoError(t, err)
		assert.Equal(t, "LR-000001", resp.RequestNumber)
		assert.Equal(t, 3, resp.Days)
		assert.Equal(t, "Pending", resp.Status)
		assert.NotNil(t, created)
		assert.Equal(t, leave.StatusPending, created.Status)
		assert.Equal(t, &managerID, created.ApproverID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("single day request counts one day", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.entitlements.findForUpdateFn = func(ctx context.Context, eID, ltID uuid.UUID, year int) (*entitlement.LeaveEntitlement, error) {
			return entitlementWith(eID, ltID, 12, 0), nil
		}

		expectTx(t, deps.sqlMock, true)

		req := validReq()
		req.StartDate = "2026-09-07"
		req.EndDate = "2026-09-07"

		resp, err := deps.service.Create(ctx, employeeID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Days)
	})

	t.Run("invalid date format", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.StartDate = "07-09-2026"

		_, err := deps.service.Create(ctx, employeeID.String(), req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.StartDate = "2026-09-09"
		req.EndDate = "2026-09-07"

		_, err := deps.service.Create(ctx, employeeID.String(), req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("no entitlement", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.entitlements.findForUpdateFn = func(ctx context.Context, eID, ltID uuid.UUID, year int) (*entitlement.LeaveEntitlement, error) {
			return nil, sql.ErrNoRows
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(ctx, employeeID.String(), validReq())

		assert.ErrorIs(t, err, leaveerrors.ErrNoEntitlement)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("insufficient balance", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		// 3 requested, only 2 remaining
		deps.entitlements.findForUpdateFn = func(ctx context.Context, eID, ltID uuid.UUID, year int) (*entitlement.LeaveEntitlement, error) {
			return entitlementWith(eID, ltID, 12, 10), nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(ctx, employeeID.String(), validReq())

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repo create error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.entitlements.findForUpdateFn = func(ctx context.Context, eID, ltID uuid.UUID, year int) (*entitlement.LeaveEntitlement, error) {
			return entitlementWith(eID, ltID, 12, 0), nil
		}
		deps.repo.createFn = func(ctx context.Context, lr *leave.LeaveRequest) error {
			return errors.New("db error")
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(ctx, employeeID.String(), validReq())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	employeeID := uuid.New()
	leaveTypeID := uuid.New()
	managerID := uuid.New()

	pendingRequest := func() *leave.LeaveRequest {
		return &leave.LeaveRequest{
			ID:          requestID,
			EmployeeID:  employeeID,
			LeaveTypeID: leaveTypeID,
			ApproverID:  &managerID,
			StartDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			Status:      leave.StatusPending,
		}
	}

	t.Run("approve increments used days by request span", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
			assert.Equal(t, requestID, id)
			return pendingRequest(), nil
		}

		var addedDays int
		deps.entitlements.addUsedDaysFn = func(ctx context.Context, eID, ltID uuid.UUID, year, days int) (int64, error) {
			assert.Equal(t, employeeID, eID)
			assert.Equal(t, leaveTypeID, ltID)
			assert.Equal(t, time.Now().UTC().Year(), year)
			addedDays = days
			return 1, nil
		}

		var fromStatus, toStatus string
		deps.repo.updateDecisionFn = func(ctx context.Context, id uuid.UUID, from, to string, comment *string, approvalDate time.Time) (int64, error) {
			fromStatus, toStatus = from, to
			return 1, nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Decide(ctx, managerID.String(), requestID.String(), leave.DecideLeaveRequest{
			Status: "Approved",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Approved", resp.Status)
		assert.Equal(t, 6, resp.Days)
		assert.Equal(t, 6, addedDays)
		assert.Equal(t, leave.StatusPending, fromStatus)
		assert.Equal(t, leave.StatusApproved, toStatus)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject leaves entitlement untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
			return pendingRequest(), nil
		}

		entitlementTouched := false
		deps.entitlements.addUsedDaysFn = func(ctx context.Context, eID, ltID uuid.UUID, year, days int) (int64, error) {
			entitlementTouched = true
			return 1, nil
		}

		var comment *string
		deps.repo.updateDecisionFn = func(ctx context.Context, id uuid.UUID, from, to string, c *string, approvalDate time.Time) (int64, error) {
			comment = c
			assert.Equal(t, leave.StatusRejected, to)
			return 1, nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Decide(ctx, managerID.String(), requestID.String(), leave.DecideLeaveRequest{
			Status:  "Rejected",
			Comment: "coverage is short that week",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Rejected", resp.Status)
		assert.False(t, entitlementTouched)
		assert.NotNil(t, comment)
		assert.Equal(t, "coverage is short that week", *comment)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject requires comment", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Decide(ctx, managerID.String(), requestID.String(), leave.DecideLeaveRequest{
			Status:  "Rejected",
			Comment: "   ",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrCommentRequired)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Decide(ctx, managerID.String(), requestID.String(), leave.DecideLeaveRequest{
			Status: "Pending",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDecision)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
			return nil, sql.ErrNoRows
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Decide(ctx, managerID.String(), requestID.String(), leave.DecideLeaveRequest{
			Status: "Approved",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveRequestNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already decided", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
			lr := pendingRequest()
			lr.Status = leave.StatusApproved
			return lr, nil
		}

		entitlementTouched := false
		deps.entitlements.addUsedDaysFn = func(ctx context.Context, eID, ltID uuid.UUID, year, days int) (int64, error) {
			entitlementTouched = true
			return 1, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Decide(ctx, managerID.String(), requestID.String(), leave.DecideLeaveRequest{
			Status: "Approved",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
		assert.False(t, entitlementTouched)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("lost race rolls back entitlement increment", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
			return pendingRequest(), nil
		}
		deps.entitlements.addUsedDaysFn = func(ctx context.Context, eID, ltID uuid.UUID, year, days int) (int64, error) {
			return 1, nil
		}
		// A concurrent decision slipped in: the conditional update matches nothing.
		deps.repo.updateDecisionFn = func(ctx context.Context, id uuid.UUID, from, to string, comment *string, approvalDate time.Time) (int64, error) {
			return 0, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Decide(ctx, managerID.String(), requestID.String(), leave.DecideLeaveRequest{
			Status: "Approved",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing entitlement on approve", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
			return pendingRequest(), nil
		}
		deps.entitlements.addUsedDaysFn = func(ctx context.Context, eID, ltID uuid.UUID, year, days int) (int64, error) {
			return 0, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Decide(ctx, managerID.String(), requestID.String(), leave.DecideLeaveRequest{
			Status: "Approved",
		})

		assert.ErrorIs(t, err, entitlementerrors.ErrEntitlementNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Decide(ctx, managerID.String(), "not-a-uuid", leave.DecideLeaveRequest{
			Status: "Approved",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidRequestID)
	})
}

func TestLeaveService_GetHistory(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("maps rows and labels", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		approved := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		deps.repo.findByEmployeeFn = func(ctx context.Context, eID string, f leave.Filter) ([]leave.HistoryRow, error) {
			assert.Equal(t, employeeID.String(), eID)
			assert.Equal(t, leave.StatusApproved, f.Status)
			return []leave.HistoryRow{
				{
					ID:            uuid.New(),
					RequestNumber: "LR-000042",
					LeaveTypeName: "Annual Leave",
					StartDate:     time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
					EndDate:       time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
					Days:          3,
					Status:        leave.StatusApproved,
					Reason:        "family matters",
					RequestDate:   time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC),
					ApprovalDate:  &approved,
				},
			}, nil
		}

		resp, err := deps.service.GetHistory(ctx, employeeID.String(), leave.Filter{Status: leave.StatusApproved})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Approved", resp[0].Status)
		assert.Equal(t, "Annual Leave", resp[0].LeaveType)
		assert.Equal(t, 3, resp[0].Days)
		assert.NotNil(t, resp[0].ApprovalDate)
		assert.Equal(t, "2026-08-20", *resp[0].ApprovalDate)
	})

	t.Run("invalid employee id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetHistory(ctx, "nope", leave.Filter{})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidEmployeeID)
	})
}

func TestLeaveService_GetManagerRequests(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New()

	t.Run("passes filter through", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByManagerFn = func(ctx context.Context, mID string, f leave.Filter) ([]leave.TeamRow, error) {
			assert.Equal(t, managerID.String(), mID)
			assert.Equal(t, "sick", f.Search)
			assert.Equal(t, leave.StatusPending, f.Status)
			return []leave.TeamRow{
				{
					ID:            uuid.New(),
					RequestNumber: "LR-000007",
					EmployeeID:    uuid.New(),
					EmployeeName:  "Ratri Handayani",
					Department:    "Engineering",
					LeaveTypeName: "Sick Leave",
					StartDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
					EndDate:       time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
					Days:          2,
					Status:        leave.StatusPending,
					RequestDate:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		}

		resp, err := deps.service.GetManagerRequests(ctx, managerID.String(), leave.Filter{
			Search: "sick",
			Status: leave.StatusPending,
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Ratri Handayani", resp[0].EmployeeName)
		assert.Equal(t, "Pending", resp[0].Status)
	})

	t.Run("invalid manager id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetManagerRequests(ctx, "nope", leave.Filter{})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidManagerID)
	})
}
