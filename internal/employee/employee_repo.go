package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-payroll/internal/shared/connection"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByDepartment(ctx context.Context, department string) ([]Employee, error)
	Update(ctx context.Context, emp *Employee) error
	DeleteWithDependents(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) session(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.session(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.session(ctx).
		Order("emp_id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var emp Employee
	err := r.session(ctx).
		First(&emp, "emp_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindByDepartment(ctx context.Context, department string) ([]Employee, error) {
	var emps []Employee
	err := r.session(ctx).
		Where("department = ?", department).
		Order("emp_id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	res := r.session(ctx).
		Model(&Employee{}).
		Where("emp_id = ?", emp.ID).
		Updates(map[string]any{
			"name":         emp.Name,
			"designation":  emp.Designation,
			"department":   emp.Department,
			"basic_salary": emp.BasicSalary,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWithDependents removes the employee and every attendance, leave and
// payroll row that references it. Callers bind the repository to a
// transaction first so the removal is all-or-nothing.
func (r *repository) DeleteWithDependents(ctx context.Context, id int64) error {
	db := r.session(ctx)
	for _, table := range []string{"attendance", "leaves", "payroll"} {
		if err := db.Exec("DELETE FROM "+table+" WHERE emp_id = ?", id).Error; err != nil {
			return err
		}
	}

	res := db.Delete(&Employee{}, "emp_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
