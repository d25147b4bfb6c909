package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-payroll/internal/shared/connection"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context) ([]Leave, error)
	FindByID(ctx context.Context, id int64) (*Leave, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	EmployeeExists(ctx context.Context, employeeID int64) (bool, error)
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

func (r *repository) session(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.session(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.session(ctx).
		Preload("Employee").
		Order("leave_id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Leave, error) {
	var l Leave
	err := r.session(ctx).
		Preload("Employee").
		First(&l, "leave_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := r.session(ctx).
		Model(&Leave{}).
		Where("leave_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	var n int64
	err := r.session(ctx).
		Table("employees").
		Where("emp_id = ?", employeeID).
		Count(&n).Error
	return n > 0, err
}
