package payroll

import (
	"context"
	"database/sql"
	"io"
	"time"

	"go.uber.org/zap"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
)

const MonthLayout = "2006-01"

// EmployeeDirectory is the slice of the employee service payroll reads from.
type EmployeeDirectory interface {
	GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error)
}

type AttendanceLedger interface {
	MonthlyRecords(ctx context.Context, employeeID int64, month string) ([]attendance.AttendanceResponse, error)
}

type MetricsRecorder interface {
	ObservePayroll(netSalary float64)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
	Payslip(ctx context.Context, id int64) ([]byte, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	ledger    AttendanceLedger
	metrics   MetricsRecorder
	now       func() time.Time
	logger    *zap.Logger
}

// NewService wires the engine. metrics may be nil.
func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeDirectory,
	ledger AttendanceLedger,
	metrics MetricsRecorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		ledger:    ledger,
		metrics:   metrics,
		now:       time.Now,
		logger:    l,
	}
}

// Generate reads the live salary and the month's attendance, then stores a
// new payroll snapshot. The reads are not isolated from concurrent
// attendance writes.
func (s *service) Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payroll requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", req.EmployeeID),
		zap.String("month", req.Month),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("generate payroll validation failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, err
	}
	if _, err := time.Parse(MonthLayout, req.Month); err != nil {
		s.logger.Warn("generate payroll invalid month", zap.String("month", req.Month))
		return PayrollResponse{}, payrollerrors.ErrInvalidMonth
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("generate payroll employee lookup failed", zap.Int64("employee_id", req.EmployeeID), zap.Error(err))
		return PayrollResponse{}, err
	}

	records, err := s.ledger.MonthlyRecords(ctx, req.EmployeeID, req.Month)
	if err != nil {
		s.logger.Error("generate payroll attendance lookup failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	statuses := make([]string, len(records))
	for i, r := range records {
		statuses[i] = r.Status
	}

	b := Compute(emp.BasicSalary, statuses)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, apperror.Storage(err)
	}
	defer tx.Rollback()

	p := &Payroll{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		BasicSalary: emp.BasicSalary,
		Allowances:  b.Allowances,
		Deductions:  b.Deductions,
		NetSalary:   b.NetSalary,
		GeneratedAt: s.now().UTC(),
	}
	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		s.logger.Error("generate payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate payroll commit failed", zap.Error(err))
		return PayrollResponse{}, apperror.Storage(err)
	}

	if s.metrics != nil {
		s.metrics.ObservePayroll(p.NetSalary)
	}

	s.logger.Info("generate payroll success",
		zap.String("request_id", rid),
		zap.Int64("payroll_id", p.ID),
		zap.Int64("employee_id", p.EmployeeID),
		zap.String("month", p.Month),
		zap.Int("absent_days", b.AbsentDays),
		zap.Int("half_days", b.HalfDays),
		zap.Float64("net_salary", p.NetSalary),
	)

	p.Employee = &EmployeeRef{ID: emp.ID, Name: emp.Name}
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	s.logger.Debug("get all payroll requested", zap.String("request_id", contextutil.GetRequestID(ctx)))
	payrolls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all payroll failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(payrolls), nil
}

func (s *service) Payslip(ctx context.Context, id int64) ([]byte, error) {
	s.logger.Debug("payslip requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("payroll_id", id),
	)
	if id <= 0 {
		return nil, payrollerrors.ErrInvalidPayrollID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("payslip lookup failed", zap.Int64("payroll_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	pdf, err := renderPayslipPDF(mapToResponse(*p))
	if err != nil {
		s.logger.Error("payslip render failed", zap.Int64("payroll_id", id), zap.Error(err))
		return nil, apperror.Wrap(err, payrollerrors.ErrPayslipRender.Code, payrollerrors.ErrPayslipRender.Message, payrollerrors.ErrPayslipRender.HTTPStatus)
	}
	return pdf, nil
}

func (s *service) ExportCSV(ctx context.Context, w io.Writer) error {
	s.logger.Debug("payroll register export requested", zap.String("request_id", contextutil.GetRequestID(ctx)))
	payrolls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("payroll register export failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := writeRegisterCSV(w, mapToListResponse(payrolls)); err != nil {
		s.logger.Error("payroll register write failed", zap.Error(err))
		return apperror.Wrap(err, payrollerrors.ErrExportFailed.Code, payrollerrors.ErrExportFailed.Message, payrollerrors.ErrExportFailed.HTTPStatus)
	}
	return nil
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		Month:       p.Month,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		NetSalary:   p.NetSalary,
		GeneratedAt: p.GeneratedAt.Format(time.RFC3339),
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.Name
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	res := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		res[i] = mapToResponse(p)
	}
	return res
}
