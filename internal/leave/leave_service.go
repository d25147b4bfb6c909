package leave

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	employeeerrors "go-payroll/internal/employee/errors"
	leaveerrors "go-payroll/internal/leave/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	Approve(ctx context.Context, id int64) (LeaveResponse, error)
	Reject(ctx context.Context, id int64) (LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("apply leave requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if err := validateApplyRequest(req); err != nil {
		s.logger.Warn("apply leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, apperror.Storage(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("apply leave employee check failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if !exists {
		s.logger.Warn("apply leave unknown employee", zap.Int64("employee_id", req.EmployeeID))
		return LeaveResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	l := &Leave{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     StatusPending,
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, apperror.Storage(err)
	}
	s.logger.Info("apply leave success",
		zap.String("request_id", rid),
		zap.Int64("leave_id", l.ID),
		zap.Int64("employee_id", req.EmployeeID),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Approve(ctx context.Context, id int64) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id int64) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, id, StatusRejected)
}

// transitionLeaveStatus sets the status whatever the current one is; the last
// decision wins.
func (s *service) transitionLeaveStatus(ctx context.Context, id int64, targetStatus string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("leave status change requested",
		zap.String("request_id", rid),
		zap.Int64("leave_id", id),
		zap.String("target_status", targetStatus),
	)

	if id <= 0 {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave status change begin tx failed", zap.Error(err))
		return LeaveResponse{}, apperror.Storage(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("leave status change lookup failed", zap.Int64("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if l.Status != StatusPending && l.Status != targetStatus {
		s.logger.Warn("overwriting decided leave",
			zap.String("request_id", rid),
			zap.Int64("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", targetStatus),
		)
	}

	if err := qtx.UpdateStatus(ctx, id, targetStatus); err != nil {
		s.logger.Error("leave status change persist failed", zap.Int64("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("leave status change commit failed", zap.Error(err))
		return LeaveResponse{}, apperror.Storage(err)
	}

	l.Status = targetStatus
	s.logger.Info("leave status change success",
		zap.String("request_id", rid),
		zap.Int64("leave_id", id),
		zap.String("status", targetStatus),
	)
	return mapToResponse(*l), nil
}

func validateApplyRequest(req ApplyLeaveRequest) error {
	if err := apperror.Validate(req); err != nil {
		return err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}
	if startDate.After(endDate) {
		return leaveerrors.ErrInvalidDateRange
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Reason:     l.Reason,
		Status:     l.Status,
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.Name
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res
}
