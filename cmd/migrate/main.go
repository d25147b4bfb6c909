package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"go-payroll/internal/config"
	"go-payroll/internal/logger"
	"go-payroll/internal/migration"
	"go-payroll/internal/shared/connection"
)

func main() {
	status := flag.Bool("status", false, "print applied migration versions and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	// migrations report to the terminal
	cfg.Log.Output = []string{"stdout"}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	store, err := connection.OpenStore(cfg.Database, log)
	if err != nil {
		log.Fatal("open store failed", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()

	if *status {
		versions, err := migration.Applied(ctx, store.Gorm)
		if err != nil {
			log.Fatal("read migration status failed", zap.Error(err))
		}
		fmt.Printf("applied versions: %v (latest known: %d)\n", versions, len(migration.All()))
		return
	}

	n, err := migration.Run(ctx, store.Gorm, log)
	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migrations complete", zap.Int("applied", n))
}
