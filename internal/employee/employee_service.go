package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
)

const (
	DepartmentKeyPrefix  = "employees:department:"
	DefaultDepartmentTTL = time.Hour
)

func GetDepartmentKey(department string) string {
	return DepartmentKeyPrefix + department
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	SearchByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	rdb      *redis.Client
	cacheTTL time.Duration
	sf       *singleflight.Group
	logger   *zap.Logger
}

// NewService wires the directory. rdb may be nil, in which case department
// searches always hit the store.
func NewService(db *sql.DB, repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultDepartmentTTL
	}
	return &service{
		db:       db,
		repo:     repo,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("department", req.Department),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	salary, err := parseBasicSalary(req.BasicSalary)
	if err != nil {
		s.logger.Warn("create employee invalid basic_salary",
			zap.String("request_id", rid),
			zap.String("basic_salary", req.BasicSalary),
		)
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, apperror.Storage(err)
	}
	defer tx.Rollback()

	emp := &Employee{
		Name:        req.Name,
		Designation: req.Designation,
		Department:  req.Department,
		BasicSalary: salary,
	}
	if err := s.repo.WithTx(tx).Create(ctx, emp); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, apperror.Storage(err)
	}

	s.invalidateDepartments(ctx, emp.Department)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", emp.ID),
	)
	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("request_id", contextutil.GetRequestID(ctx)))
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("employee_id", id),
	)
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("update employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	salary, err := parseBasicSalary(req.BasicSalary)
	if err != nil {
		s.logger.Warn("update employee invalid basic_salary",
			zap.String("request_id", rid),
			zap.String("basic_salary", req.BasicSalary),
		)
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, apperror.Storage(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	previousDepartment := emp.Department

	emp.Name = req.Name
	emp.Designation = req.Designation
	emp.Department = req.Department
	emp.BasicSalary = salary

	if err := qtx.Update(ctx, emp); err != nil {
		s.logger.Error("update employee persist failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, apperror.Storage(err)
	}

	s.invalidateDepartments(ctx, previousDepartment, emp.Department)

	s.logger.Info("update employee success", zap.String("request_id", rid), zap.Int64("employee_id", id))
	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return apperror.Storage(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("delete employee fetch existing failed", zap.Int64("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.DeleteWithDependents(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return apperror.Storage(err)
	}

	s.invalidateDepartments(ctx, emp.Department)

	s.logger.Info("delete employee success", zap.String("request_id", rid), zap.Int64("employee_id", id))
	return nil
}

func (s *service) SearchByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error) {
	cacheKey := GetDepartmentKey(department)
	s.logger.Debug("search employees by department requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("department", department),
	)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// concurrent misses for the same department share one store read
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindByDepartment(ctx, department)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("cache department search failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("search employees by department failed", zap.String("department", department), zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) invalidateDepartments(ctx context.Context, departments ...string) {
	if s.rdb == nil {
		return
	}

	seen := make(map[string]bool, len(departments))
	keys := make([]string, 0, len(departments))
	for _, d := range departments {
		if seen[d] {
			continue
		}
		seen[d] = true
		keys = append(keys, GetDepartmentKey(d))
	}

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate department cache",
			zap.Error(err),
			zap.Strings("keys", keys),
		)
	}
}

// parseBasicSalary accepts any finite, non-negative decimal.
func parseBasicSalary(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, employeeerrors.ErrInvalidBasicSalary
	}
	return v, nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		Designation: emp.Designation,
		Department:  emp.Department,
		BasicSalary: emp.BasicSalary,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
