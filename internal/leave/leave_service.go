package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SopitaJW/leave-management/internal/employee"
	"github.com/SopitaJW/leave-management/internal/entitlement"
	entitlementerrors "github.com/SopitaJW/leave-management/internal/entitlement/errors"
	"github.com/SopitaJW/leave-management/internal/events"
	leaveerrors "github.com/SopitaJW/leave-management/internal/leave/errors"
	"github.com/SopitaJW/leave-management/internal/messaging/kafka"
	"github.com/SopitaJW/leave-management/internal/shared/contextutil"
	"github.com/SopitaJW/leave-management/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	dashboardStatsKeyPrefix = "manager:dashboard:"
	dashboardStatsTTL       = 30 * time.Second
)

func dashboardStatsKey(managerID string) string {
	return dashboardStatsKeyPrefix + managerID
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetHistory(ctx context.Context, employeeID string, f Filter) ([]LeaveResponse, error)
	GetManagerRequests(ctx context.Context, managerID string, f Filter) ([]TeamLeaveResponse, error)
	GetTeamHistory(ctx context.Context, managerID string, f Filter) ([]TeamLeaveResponse, error)
	Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (DecisionResponse, error)
	GetDashboardStats(ctx context.Context, managerID string) (DashboardStatsResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	entitlements entitlement.Repository
	employees    employee.Repository
	counter      counter.Repository
	outbox       kafka.OutboxRepository
	rdb          *redis.Client
	sf           singleflight.Group
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	entitlements entitlement.Repository,
	employees employee.Repository,
	counterRepo counter.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, entitlements, employees, counterRepo, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	entitlements entitlement.Repository,
	employees employee.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		entitlements: entitlements,
		employees:    employees,
		counter:      counterRepo,
		outbox:       outboxRepo,
		rdb:          rdb,
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave request",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveTypeID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	days := DaysBetween(startDate, endDate)

	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
		}
		s.logger.Error("create leave employee lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	etx := s.entitlements.WithTx(tx)

	// The quota check runs against a locked entitlement row so two submissions
	// cannot both pass on the same stale balance.
	year := time.Now().UTC().Year()
	ent, err := etx.FindForUpdate(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LeaveResponse{}, leaveerrors.ErrNoEntitlement
		}
		s.logger.Error("create leave entitlement lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if days > ent.RemainingDays() {
		s.logger.Warn("create leave rejected, insufficient balance",
			zap.String("employee_id", req.EmployeeID),
			zap.Int("requested_days", days),
			zap.Int("remaining_days", ent.RemainingDays()),
		)
		return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
	}

	nextVal, err := s.counter.GetNextValue(ctx, "leave_request")
	if err != nil {
		s.logger.Error("create leave generate request number failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	lr := &LeaveRequest{
		ID:            uuid.New(),
		RequestNumber: fmt.Sprintf("LR-%06d", nextVal),
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		ApproverID:    empl.ManagerID,
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        req.Reason,
		RequestDate:   today(),
		Status:        StatusPending,
	}

	if err := qtx.Create(ctx, lr); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_request_id", lr.ID.String()),
		zap.String("request_number", lr.RequestNumber),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days", days),
	)

	return mapToResponse(*lr), nil
}

func (s *service) GetHistory(ctx context.Context, employeeID string, f Filter) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindByEmployee(ctx, employeeID, f)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapHistoryRow(row)
	}
	return resp, nil
}

func (s *service) GetManagerRequests(ctx context.Context, managerID string, f Filter) ([]TeamLeaveResponse, error) {
	return s.listTeam(ctx, managerID, f)
}

func (s *service) GetTeamHistory(ctx context.Context, managerID string, f Filter) ([]TeamLeaveResponse, error) {
	return s.listTeam(ctx, managerID, f)
}

func (s *service) listTeam(ctx context.Context, managerID string, f Filter) ([]TeamLeaveResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, leaveerrors.ErrInvalidManagerID
	}

	rows, err := s.repo.FindByManager(ctx, managerID, f)
	if err != nil {
		return nil, err
	}

	resp := make([]TeamLeaveResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapTeamRow(row)
	}
	return resp, nil
}

// Decide applies the single once-only transition of a leave request. The
// approve path must update the request and the entitlement as one atomic
// unit: both writes run in the same transaction against a locked request row,
// and the status update is conditional on the row still being PENDING so a
// concurrent decision loses cleanly with a conflict instead of double
// counting used days.
func (s *service) Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (DecisionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide leave request",
		zap.String("request_id", rid),
		zap.String("leave_request_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", req.Status),
	)

	requestID, err := uuid.Parse(id)
	if err != nil {
		return DecisionResponse{}, leaveerrors.ErrInvalidRequestID
	}
	decision, err := ParseDecision(req.Status)
	if err != nil {
		return DecisionResponse{}, err
	}
	comment := strings.TrimSpace(req.Comment)
	if decision == StatusRejected && comment == "" {
		return DecisionResponse{}, leaveerrors.ErrCommentRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByIDForUpdate(ctx, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DecisionResponse{}, leaveerrors.ErrLeaveRequestNotFound
		}
		s.logger.Error("decide leave lookup failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	if lr.Status != StatusPending {
		s.logger.Warn("decide leave already decided",
			zap.String("leave_request_id", id),
			zap.String("current_status", lr.Status),
		)
		return DecisionResponse{}, leaveerrors.ErrAlreadyDecided
	}

	days := lr.Days()
	now := time.Now().UTC()

	if decision == StatusApproved {
		// The entitlement year follows the decision date, matching the
		// original product behavior for requests spanning a year boundary.
		etx := s.entitlements.WithTx(tx)
		affected, err := etx.AddUsedDays(ctx, lr.EmployeeID, lr.LeaveTypeID, now.Year(), days)
		if err != nil {
			s.logger.Error("decide leave entitlement update failed", zap.Error(err))
			return DecisionResponse{}, err
		}
		if affected == 0 {
			s.logger.Warn("decide leave entitlement missing",
				zap.String("employee_id", lr.EmployeeID.String()),
				zap.String("leave_type_id", lr.LeaveTypeID.String()),
				zap.Int("year", now.Year()),
			)
			return DecisionResponse{}, entitlementerrors.ErrEntitlementNotFound
		}
	}

	var commentPtr *string
	if comment != "" {
		commentPtr = &comment
	}

	affected, err := qtx.UpdateDecision(ctx, requestID, StatusPending, decision, commentPtr, now)
	if err != nil {
		s.logger.Error("decide leave status update failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	if affected == 0 {
		// Lost the race to another decision between the lock and the update.
		return DecisionResponse{}, leaveerrors.ErrAlreadyDecided
	}

	if s.outbox != nil {
		if err := s.stageDecidedEvent(ctx, tx, lr, decision, actorID, days, now); err != nil {
			s.logger.Error("decide leave stage event failed", zap.Error(err))
			return DecisionResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	s.invalidateDashboardStats(ctx, lr.ApproverID)

	s.logger.Info("decide leave success",
		zap.String("leave_request_id", id),
		zap.String("status", decision),
		zap.Int("days", days),
	)

	return DecisionResponse{
		ID:              lr.ID.String(),
		Status:          StatusLabel(decision),
		Days:            days,
		ApprovalDate:    now.Format("2006-01-02"),
		ApproverComment: commentPtr,
	}, nil
}

func (s *service) stageDecidedEvent(ctx context.Context, tx *sql.Tx, lr *LeaveRequest, decision, actorID string, days int, now time.Time) error {
	eventType := events.EventTypeLeaveApproved
	if decision == StatusRejected {
		eventType = events.EventTypeLeaveRejected
	}

	payload, err := json.Marshal(events.LeaveDecidedEvent{
		EventType:   eventType,
		RequestID:   lr.ID.String(),
		EmployeeID:  lr.EmployeeID.String(),
		LeaveTypeID: lr.LeaveTypeID.String(),
		Days:        days,
		Status:      decision,
		DecidedBy:   actorID,
		OccurredAt:  now,
	})
	if err != nil {
		return err
	}

	event := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   lr.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) GetDashboardStats(ctx context.Context, managerID string) (DashboardStatsResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return DashboardStatsResponse{}, leaveerrors.ErrInvalidManagerID
	}

	key := dashboardStatsKey(managerID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp DashboardStatsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		return s.buildDashboardStats(ctx, managerID, key)
	})
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	return v.(DashboardStatsResponse), nil
}

func (s *service) buildDashboardStats(ctx context.Context, managerID, cacheKey string) (DashboardStatsResponse, error) {
	mgr, err := s.employees.FindByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DashboardStatsResponse{}, leaveerrors.ErrInvalidManagerID
		}
		return DashboardStatsResponse{}, err
	}

	totalEmployees, err := s.employees.CountByManager(ctx, managerID)
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	onLeaveToday, err := s.repo.CountOnLeave(ctx, managerID, today())
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	pendingRequests, err := s.repo.CountPendingByManager(ctx, managerID)
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	recent, err := s.repo.FindRecentByManager(ctx, managerID, 3)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	resp := DashboardStatsResponse{
		ManagerInfo: ManagerInfoResponse{
			FullName: mgr.FullName(),
			Position: mgr.Position,
		},
		TeamStats: TeamStatsResponse{
			TotalEmployees:  totalEmployees,
			OnLeaveToday:    onLeaveToday,
			PendingRequests: pendingRequests,
		},
		RecentRequests: make([]RecentRequestResponse, len(recent)),
	}
	if mgr.Department != nil {
		resp.ManagerInfo.Department = mgr.Department.Name
	}
	for i, row := range recent {
		resp.RecentRequests[i] = RecentRequestResponse{
			ID:     row.ID.String(),
			Name:   row.EmployeeName,
			Type:   row.LeaveTypeName,
			Days:   row.Days,
			Status: StatusLabel(row.Status),
			Start:  row.StartDate.Format("2006-01-02"),
			End:    row.EndDate.Format("2006-01-02"),
		}
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			_ = s.rdb.Set(ctx, cacheKey, raw, dashboardStatsTTL).Err()
		}
	}

	return resp, nil
}

func (s *service) invalidateDashboardStats(ctx context.Context, approverID *uuid.UUID) {
	if s.rdb == nil || approverID == nil {
		return
	}
	_ = s.rdb.Del(ctx, dashboardStatsKey(approverID.String())).Err()
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func mapToResponse(lr LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            lr.ID.String(),
		RequestNumber: lr.RequestNumber,
		EmployeeID:    lr.EmployeeID.String(),
		LeaveTypeID:   lr.LeaveTypeID.String(),
		StartDate:     lr.StartDate.Format("2006-01-02"),
		EndDate:       lr.EndDate.Format("2006-01-02"),
		Days:          lr.Days(),
		Reason:        lr.Reason,
		Status:        StatusLabel(lr.Status),
		RequestDate:   lr.RequestDate.Format("2006-01-02"),
	}
	if lr.ApprovalDate != nil {
		v := lr.ApprovalDate.Format("2006-01-02")
		resp.ApprovalDate = &v
	}
	resp.ApproverComment = lr.ApproverComment
	return resp
}

func mapHistoryRow(row HistoryRow) LeaveResponse {
	resp := LeaveResponse{
		ID:            row.ID.String(),
		RequestNumber: row.RequestNumber,
		LeaveType:     row.LeaveTypeName,
		StartDate:     row.StartDate.Format("2006-01-02"),
		EndDate:       row.EndDate.Format("2006-01-02"),
		Days:          row.Days,
		Reason:        row.Reason,
		Status:        StatusLabel(row.Status),
		RequestDate:   row.RequestDate.Format("2006-01-02"),
	}
	if row.ApprovalDate != nil {
		v := row.ApprovalDate.Format("2006-01-02")
		resp.ApprovalDate = &v
	}
	resp.ApproverComment = row.ApproverComment
	return resp
}

func mapTeamRow(row TeamRow) TeamLeaveResponse {
	resp := TeamLeaveResponse{
		ID:            row.ID.String(),
		RequestNumber: row.RequestNumber,
		EmployeeID:    row.EmployeeID.String(),
		EmployeeName:  row.EmployeeName,
		Department:    row.Department,
		LeaveType:     row.LeaveTypeName,
		StartDate:     row.StartDate.Format("2006-01-02"),
		EndDate:       row.EndDate.Format("2006-01-02"),
		Days:          row.Days,
		Reason:        row.Reason,
		Status:        StatusLabel(row.Status),
		RequestDate:   row.RequestDate.Format("2006-01-02"),
	}
	if row.ApprovalDate != nil {
		v := row.ApprovalDate.Format("2006-01-02")
		resp.ApprovalDate = &v
	}
	resp.ApproverComment = row.ApproverComment
	return resp
}
