package connection_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"go-payroll/internal/config"
	"go-payroll/internal/shared/connection"
)

type sessionRow struct {
	ID   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

func openTemp(t *testing.T) *connection.Store {
	t.Helper()
	store, err := connection.OpenStore(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "conn.db"),
	}, zap.NewNop())
	assert.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	assert.NoError(t, store.Gorm.AutoMigrate(&sessionRow{}))
	return store
}

func TestOpenStore_UnsupportedDriver(t *testing.T) {
	_, err := connection.OpenStore(config.DatabaseConfig{Driver: "oracle"}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestSession_RollbackDiscardsWrites(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	tx, err := store.SQL.BeginTx(ctx, nil)
	assert.NoError(t, err)
	assert.NoError(t, connection.Session(ctx, store.Gorm, tx).Create(&sessionRow{Name: "a"}).Error)
	assert.NoError(t, tx.Rollback())

	var count int64
	assert.NoError(t, connection.Session(ctx, store.Gorm, nil).Model(&sessionRow{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSession_CommitKeepsWrites(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	tx, err := store.SQL.BeginTx(ctx, nil)
	assert.NoError(t, err)
	r := &sessionRow{Name: "b"}
	assert.NoError(t, connection.Session(ctx, store.Gorm, tx).Create(r).Error)
	assert.NoError(t, tx.Commit())

	assert.NotZero(t, r.ID)
	var got sessionRow
	assert.NoError(t, connection.Session(ctx, store.Gorm, nil).First(&got, r.ID).Error)
	assert.Equal(t, "b", got.Name)
}

func TestConnectRedis_DisabledWithoutAddr(t *testing.T) {
	rdb, err := connection.ConnectRedis(config.RedisConfig{}, nil)
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.False(t, connection.IsForeignKeyViolation(nil))
	assert.True(t, connection.IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, connection.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, connection.IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, connection.IsForeignKeyViolation(errors.New("disk I/O error")))
}
