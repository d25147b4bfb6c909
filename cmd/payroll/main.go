package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"go-payroll/internal/app"
	"go-payroll/internal/config"
	"go-payroll/internal/logger"
	"go-payroll/internal/menu"
	"go-payroll/internal/shared/apperror"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	m := menu.New(os.Stdin, os.Stdout, menu.Services{
		Employees:  a.Services.Employees,
		Attendance: a.Services.Attendance,
		Leaves:     a.Services.Leaves,
		Payroll:    a.Services.Payroll,
	}, menu.WithExportDir(cfg.Export.Dir), menu.WithLogger(log))

	// unblock a pending prompt on Ctrl-C
	go func() {
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
