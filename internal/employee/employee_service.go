package employee

import (
	"context"
	"database/sql"

	employeeerrors "github.com/SopitaJW/leave-management/internal/employee/errors"
	"github.com/SopitaJW/leave-management/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetTeam(ctx context.Context, managerID string) ([]EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	departmentID, err := parseOptionalUUID(req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDepartmentID
	}
	managerID, err := parseOptionalUUID(req.ManagerID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidManagerID
	}

	empl := &Employee{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Position:     req.Position,
		DepartmentID: departmentID,
		ManagerID:    managerID,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success", zap.String("employee_id", empl.ID.String()))
	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetTeam(ctx context.Context, managerID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, employeeerrors.ErrInvalidManagerID
	}

	team, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(team), nil
}

func parseOptionalUUID(v *string) (*uuid.UUID, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        empl.ID.String(),
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		FullName:  empl.FullName(),
		Email:     empl.Email,
		Position:  empl.Position,
	}
	if empl.Department != nil {
		resp.Department = empl.Department.Name
	}
	if empl.ManagerID != nil {
		v := empl.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}

func mapToListResponse(team []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(team))
	for i, e := range team {
		resp[i] = mapToResponse(e)
	}
	return resp
}
