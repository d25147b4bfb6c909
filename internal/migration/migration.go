package migration

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

type schemaMigration struct {
	Version   int       `gorm:"column:version;primaryKey;autoIncrement:false"`
	Name      string    `gorm:"column:name;not null"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

// All returns the schema history in version order.
func All() []Migration {
	return []Migration{
		{Version: 1, Name: "create_employees", Up: createTable(&employeeV1{})},
		{Version: 2, Name: "create_attendance", Up: createTable(&attendanceV1{})},
		{Version: 3, Name: "create_leaves", Up: createTable(&leaveV1{})},
		{Version: 4, Name: "create_payroll", Up: createTable(&payrollV1{})},
		{Version: 5, Name: "index_employees_department", Up: func(tx *gorm.DB) error {
			return tx.Migrator().CreateIndex(&employeeDepartmentV2{}, "idx_employees_department")
		}},
	}
}

func createTable(model any) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if tx.Migrator().HasTable(model) {
			// tables created by the pre-versioned schema are adopted as-is
			return nil
		}
		return tx.Migrator().CreateTable(model)
	}
}

// Run applies every pending migration from All.
func Run(ctx context.Context, db *gorm.DB, logger *zap.Logger) (int, error) {
	return Apply(ctx, db, All(), logger)
}

// Apply runs each migration whose version is not yet recorded, one
// transaction per migration, and returns how many were applied.
func Apply(ctx context.Context, db *gorm.DB, migrations []Migration, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("migration")

	if err := validate(migrations); err != nil {
		return 0, err
	}

	if err := db.WithContext(ctx).AutoMigrate(&schemaMigration{}); err != nil {
		return 0, fmt.Errorf("prepare schema_migrations: %w", err)
	}

	var done []schemaMigration
	if err := db.WithContext(ctx).Find(&done).Error; err != nil {
		return 0, fmt.Errorf("read schema_migrations: %w", err)
	}
	applied := make(map[int]bool, len(done))
	for _, m := range done {
		applied[m.Version] = true
	}

	sorted := append([]Migration(nil), migrations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Version < sorted[j].Version })

	count := 0
	for _, m := range sorted {
		if applied[m.Version] {
			continue
		}

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			log.Error("migration failed", zap.Int("version", m.Version), zap.String("name", m.Name), zap.Error(err))
			return count, fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}

		log.Info("migration applied", zap.Int("version", m.Version), zap.String("name", m.Name))
		count++
	}

	return count, nil
}

func validate(migrations []Migration) error {
	seen := make(map[int]bool, len(migrations))
	for _, m := range migrations {
		if m.Version <= 0 {
			return fmt.Errorf("migration %q has non-positive version %d", m.Name, m.Version)
		}
		if seen[m.Version] {
			return fmt.Errorf("duplicate migration version %d", m.Version)
		}
		if m.Up == nil {
			return fmt.Errorf("migration %d has no Up step", m.Version)
		}
		seen[m.Version] = true
	}
	return nil
}

// Applied lists recorded versions, oldest first.
func Applied(ctx context.Context, db *gorm.DB) ([]int, error) {
	var versions []int
	err := db.WithContext(ctx).
		Model(&schemaMigration{}).
		Order("version ASC").
		Pluck("version", &versions).Error
	return versions, err
}
