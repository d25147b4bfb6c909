package attendance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payroll/internal/attendance"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/testdb"
)

func TestAttendanceService_SQLite(t *testing.T) {
	ctx := context.Background()
	store := testdb.Open(t)
	svc := attendance.NewService(store.SQL, attendance.NewRepository(store.Gorm))

	require.NoError(t, store.Gorm.Exec(`INSERT INTO employees (name, basic_salary) VALUES ('Ann', 3000)`).Error)

	mark := func(date, status string) {
		t.Helper()
		_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: date, Status: status})
		require.NoError(t, err)
	}

	mark("2024-03-01", attendance.StatusPresent)
	mark("2024-03-01", attendance.StatusPresent)
	mark("2024-03-15", attendance.StatusAbsent)
	mark("2024-04-01", attendance.StatusHalfDay)

	t.Run("duplicates persist and names are joined", func(t *testing.T) {
		all, err := svc.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, "Ann", all[0].EmployeeName)
		assert.Equal(t, all[0].Date, all[1].Date)
		assert.Less(t, all[0].ID, all[1].ID)
	})

	t.Run("monthly records match the month prefix", func(t *testing.T) {
		march, err := svc.MonthlyRecords(ctx, 1, "2024-03")
		require.NoError(t, err)
		assert.Len(t, march, 3)

		none, err := svc.MonthlyRecords(ctx, 1, "2023-03")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 77, Date: "2024-03-01", Status: attendance.StatusPresent})
		assert.True(t, apperror.IsNotFound(err))
	})
}
