package app

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-payroll/internal/attendance"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/metrics"
	"go-payroll/internal/migration"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/connection"
)

type Services struct {
	Employees  employee.Service
	Attendance attendance.Service
	Leaves     leave.Service
	Payroll    payroll.Service
}

// App holds the process-wide handles. Build opens them, Close releases them.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Store    *connection.Store
	Redis    *redis.Client
	Metrics  *metrics.Recorder
	Services Services
}

func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	store, err := connection.OpenStore(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if _, err := migration.Run(ctx, store.Gorm, logger); err != nil {
		_ = store.Close()
		return nil, err
	}

	rdb, err := connection.ConnectRedis(cfg.Redis, logger)
	if err != nil {
		// the cache is optional; fall back to the store
		logger.Warn("redis unavailable, department cache disabled", zap.Error(err))
		rdb = nil
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Redis:   rdb,
		Metrics: metrics.NewRecorder(),
	}
	a.Services = buildServices(a)
	return a, nil
}

func buildServices(a *App) Services {
	employeeRepo := employee.NewRepository(a.Store.Gorm)
	attendanceRepo := attendance.NewRepository(a.Store.Gorm)
	leaveRepo := leave.NewRepository(a.Store.Gorm)
	payrollRepo := payroll.NewRepository(a.Store.Gorm)

	employeeService := employee.NewService(a.Store.SQL, employeeRepo, a.Redis, a.Config.Redis.CacheTTL, a.Logger)
	attendanceService := attendance.NewService(a.Store.SQL, attendanceRepo, a.Logger)

	return Services{
		Employees:  employeeService,
		Attendance: attendanceService,
		Leaves:     leave.NewService(a.Store.SQL, leaveRepo, a.Logger),
		Payroll:    payroll.NewService(a.Store.SQL, payrollRepo, employeeService, attendanceService, a.Metrics, a.Logger),
	}
}

func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	errs = append(errs, a.Store.Close())
	return errors.Join(errs...)
}
