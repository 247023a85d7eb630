package department_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/SopitaJW/leave-management/internal/department"
	departmenterrors "github.com/SopitaJW/leave-management/internal/department/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepository struct {
	withTxFn   func(tx *sql.Tx) department.Repository
	createFn   func(ctx context.Context, dept *department.Department) error
	findAllFn  func(ctx context.Context) ([]department.Department, error)
	findByIDFn func(ctx context.Context, id string) (*department.Department, error)
}

func (f *fakeDepartmentRepository) WithTx(tx *sql.Tx) department.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, dept *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, dept)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func setupServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, department.Service, *fakeDepartmentRepository) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeDepartmentRepository{}
	svc := department.NewService(db, repo)
	return db, sqlMock, svc, repo
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, sqlMock, svc, repo := setupServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.createFn = func(ctx context.Context, dept *department.Department) error {
			assert.Equal(t, "Engineering", dept.Name)
			assert.NotEqual(t, uuid.Nil, dept.ID)
			return nil
		}

		resp, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		db, sqlMock, svc, repo := setupServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.createFn = func(ctx context.Context, dept *department.Department) error {
			return errors.New(`duplicate key value violates unique constraint "uq_department_name"`)
		}

		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentAlreadyExists)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, _, svc, repo := setupServiceTest(t)
		defer db.Close()

		deptID := uuid.New()
		repo.findByIDFn = func(ctx context.Context, id string) (*department.Department, error) {
			assert.Equal(t, deptID.String(), id)
			return &department.Department{ID: deptID, Name: "Engineering"}, nil
		}

		resp, err := svc.GetByID(ctx, deptID.String())

		assert.NoError(t, err)
		assert.Equal(t, deptID.String(), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db, _, svc, _ := setupServiceTest(t)
		defer db.Close()

		_, err := svc.GetByID(ctx, uuid.New().String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	db, _, svc, repo := setupServiceTest(t)
	defer db.Close()

	repo.findAllFn = func(ctx context.Context) ([]department.Department, error) {
		return []department.Department{
			{ID: uuid.New(), Name: "Engineering"},
			{ID: uuid.New(), Name: "People Ops"},
		}, nil
	}

	resp, err := svc.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "People Ops", resp[1].Name)
}
