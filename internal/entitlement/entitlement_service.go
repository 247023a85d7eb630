package entitlement

import (
	"context"
	"database/sql"
	"time"

	entitlementerrors "github.com/SopitaJW/leave-management/internal/entitlement/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=entitlement_service.go -destination=mock/entitlement_service_mock.go -package=mock
type Service interface {
	// Grant creates the yearly allowance row. Seed data and the year-rollover
	// job are the only intended callers.
	Grant(ctx context.Context, req GrantEntitlementRequest) (EntitlementResponse, error)
	// GetSummary returns the employee's current-year allowance per leave type.
	GetSummary(ctx context.Context, employeeID string) ([]SummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("entitlement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("entitlement.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Grant(ctx context.Context, req GrantEntitlementRequest) (EntitlementResponse, error) {
	s.logger.Debug("grant entitlement requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("year", req.Year),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("grant entitlement begin tx failed", zap.Error(err))
		return EntitlementResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ent := &LeaveEntitlement{
		ID:          uuid.New(),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		LeaveTypeID: uuid.MustParse(req.LeaveTypeID),
		Year:        req.Year,
		TotalDays:   req.TotalDays,
	}

	if err := qtx.Create(ctx, ent); err != nil {
		s.logger.Error("grant entitlement persist failed", zap.Error(err))
		return EntitlementResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("grant entitlement commit failed", zap.Error(err))
		return EntitlementResponse{}, err
	}

	s.logger.Info("grant entitlement success", zap.String("entitlement_id", ent.ID.String()))
	return mapToResponse(*ent), nil
}

func (s *service) GetSummary(ctx context.Context, employeeID string) ([]SummaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, entitlementerrors.ErrInvalidEmployeeID
	}

	year := time.Now().UTC().Year()
	rows, err := s.repo.SummaryByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	resp := make([]SummaryResponse, len(rows))
	for i, row := range rows {
		resp[i] = SummaryResponse{
			LeaveTypeID: row.LeaveTypeID.String(),
			Name:        row.Name,
			Quota:       row.Quota,
			Used:        row.Used,
			Remaining:   row.Quota - row.Used,
		}
	}
	return resp, nil
}

func mapToResponse(ent LeaveEntitlement) EntitlementResponse {
	return EntitlementResponse{
		ID:          ent.ID.String(),
		EmployeeID:  ent.EmployeeID.String(),
		LeaveTypeID: ent.LeaveTypeID.String(),
		Year:        ent.Year,
		Quota:       ent.TotalDays,
		Used:        ent.UsedDays,
		Remaining:   ent.RemainingDays(),
	}
}
