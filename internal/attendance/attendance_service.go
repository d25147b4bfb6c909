package attendance

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	attendanceerrors "go-payroll/internal/attendance/errors"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
)

const MonthLayout = "2006-01"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	MonthlyRecords(ctx context.Context, employeeID int64, month string) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Mark appends a record. Several records for the same employee and date are
// allowed and all of them count towards payroll.
func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("mark attendance requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("mark attendance validation failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, apperror.Storage(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("mark attendance employee lookup failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if !exists {
		s.logger.Warn("mark attendance unknown employee", zap.Int64("employee_id", req.EmployeeID))
		return AttendanceResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	row := &Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	}
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("mark attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("mark attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, apperror.Storage(err)
	}

	s.logger.Info("mark attendance success",
		zap.String("request_id", rid),
		zap.Int64("attendance_id", row.ID),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	s.logger.Debug("get all attendance requested", zap.String("request_id", contextutil.GetRequestID(ctx)))
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all attendance failed", zap.Error(err))
		return nil, apperror.Storage(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) MonthlyRecords(ctx context.Context, employeeID int64, month string) ([]AttendanceResponse, error) {
	s.logger.Debug("monthly attendance requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("employee_id", employeeID),
		zap.String("month", month),
	)

	if employeeID <= 0 {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return nil, attendanceerrors.ErrInvalidMonth
	}

	rows, err := s.repo.FindByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		s.logger.Error("monthly attendance failed", zap.Error(err))
		return nil, apperror.Storage(err)
	}
	return mapToListResponse(rows), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
