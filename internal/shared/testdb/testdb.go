// Package testdb opens throwaway migrated SQLite stores for tests.
package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"go-payroll/internal/config"
	"go-payroll/internal/migration"
	"go-payroll/internal/shared/connection"
)

// Open returns a store backed by a fresh SQLite file with the full schema
// applied. The store is closed when the test finishes.
func Open(t testing.TB) *connection.Store {
	t.Helper()

	store, err := connection.OpenStore(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "payroll.db"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := migration.Run(context.Background(), store.Gorm, zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}
