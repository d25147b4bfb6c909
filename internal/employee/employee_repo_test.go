package employee_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/testdb"
)

func TestEmployeeService_SQLite(t *testing.T) {
	ctx := context.Background()
	store := testdb.Open(t)
	svc := employee.NewService(store.SQL, employee.NewRepository(store.Gorm), nil, 0, zap.NewNop())

	count := func(table string) int64 {
		var n int64
		require.NoError(t, store.Gorm.Table(table).Count(&n).Error)
		return n
	}

	ann, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Ann", Designation: "Engineer", Department: "Eng", BasicSalary: "3000"})
	require.NoError(t, err)
	bob, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Bob", Department: "Ops", BasicSalary: "2000"})
	require.NoError(t, err)

	t.Run("create adds exactly one row each", func(t *testing.T) {
		assert.Equal(t, int64(2), count("employees"))
		assert.Less(t, ann.ID, bob.ID)
	})

	t.Run("list is in insertion order", func(t *testing.T) {
		all, err := svc.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Ann", all[0].Name)
		assert.Equal(t, "Bob", all[1].Name)
	})

	t.Run("update overwrites all fields", func(t *testing.T) {
		got, err := svc.Update(ctx, bob.ID, employee.UpdateEmployeeRequest{Name: "Robert", Designation: "Lead", Department: "Eng", BasicSalary: "2200"})
		require.NoError(t, err)
		assert.Equal(t, "Robert", got.Name)

		stored, err := svc.GetByID(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lead", stored.Designation)
		assert.Equal(t, 2200.0, stored.BasicSalary)
	})

	t.Run("update unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, employee.UpdateEmployeeRequest{Name: "x", BasicSalary: "1"})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("search by department is exact", func(t *testing.T) {
		eng, err := svc.SearchByDepartment(ctx, "Eng")
		require.NoError(t, err)
		assert.Len(t, eng, 2)

		none, err := svc.SearchByDepartment(ctx, "eng")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("delete cascades to dependent rows", func(t *testing.T) {
		require.NoError(t, store.Gorm.Exec(`INSERT INTO attendance (emp_id, date, status) VALUES (?, '2024-03-01', 'Present')`, ann.ID).Error)
		require.NoError(t, store.Gorm.Exec(`INSERT INTO leaves (emp_id, start_date, end_date, reason) VALUES (?, '2024-03-04', '2024-03-05', 'x')`, ann.ID).Error)
		require.NoError(t, store.Gorm.Exec(`INSERT INTO payroll (emp_id, month, basic_salary, allowances, deductions, net_salary, generated_at) VALUES (?, '2024-03', 3000, 300, 0, 3300, CURRENT_TIMESTAMP)`, ann.ID).Error)
		require.NoError(t, store.Gorm.Exec(`INSERT INTO attendance (emp_id, date, status) VALUES (?, '2024-03-01', 'Absent')`, bob.ID).Error)

		require.NoError(t, svc.Delete(ctx, ann.ID))

		assert.Equal(t, int64(1), count("employees"))
		assert.Equal(t, int64(1), count("attendance"))
		assert.Equal(t, int64(0), count("leaves"))
		assert.Equal(t, int64(0), count("payroll"))

		err := svc.Delete(ctx, ann.ID)
		assert.True(t, apperror.IsNotFound(err))
	})
}
