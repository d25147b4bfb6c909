package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-payroll/internal/shared/connection"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context) ([]Payroll, error)
	FindByID(ctx context.Context, id int64) (*Payroll, error)
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

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return connection.Session(ctx, r.db, r.tx).Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Payroll, error) {
	var payrolls []Payroll
	err := connection.Session(ctx, r.db, r.tx).
		Preload("Employee").
		Order("payroll_id ASC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Payroll, error) {
	var payroll Payroll
	err := connection.Session(ctx, r.db, r.tx).
		Preload("Employee").
		First(&payroll, "payroll_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}
