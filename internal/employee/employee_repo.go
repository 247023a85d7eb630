package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByManager(ctx context.Context, managerID string) ([]Employee, error)
	CountByManager(ctx context.Context, managerID string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]Employee, error) {
	var team []Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("manager_id = ?", managerID).
		Order("first_name ASC, last_name ASC").
		Find(&team).Error
	return team, err
}

func (r *repository) CountByManager(ctx context.Context, managerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("manager_id = ?", managerID).
		Count(&count).Error
	return count, err
}
