package attendance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-payroll/internal/shared/connection"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	EmployeeExists(ctx context.Context, employeeID int64) (bool, error)
	FindAll(ctx context.Context) ([]Attendance, error)
	FindByEmployeeAndMonth(ctx context.Context, employeeID int64, month string) ([]Attendance, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return connection.Session(ctx, r.db, r.tx).Create(a).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	var n int64
	err := connection.Session(ctx, r.db, r.tx).
		Table("employees").
		Where("emp_id = ?", employeeID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := connection.Session(ctx, r.db, r.tx).
		Preload("Employee").
		Order("att_id ASC").
		Find(&rows).Error
	return rows, err
}

// FindByEmployeeAndMonth matches on the "YYYY-MM" prefix of the stored date.
func (r *repository) FindByEmployeeAndMonth(ctx context.Context, employeeID int64, month string) ([]Attendance, error) {
	var rows []Attendance
	err := connection.Session(ctx, r.db, r.tx).
		Where("emp_id = ?", employeeID).
		Where("date LIKE ?", month+"%").
		Order("att_id ASC").
		Find(&rows).Error
	return rows, err
}
