package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	employeeMock "go-payroll/internal/employee/mock"
	"go-payroll/internal/shared/apperror"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	svc := employee.NewService(db, repo, dbRedis, time.Hour)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := employee.CreateEmployeeRequest{
			Name:        "Ann",
			Designation: "Engineer",
			Department:  "Eng",
			BasicSalary: "3000",
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Ann", e.Name)
				assert.Equal(t, 3000.0, e.BasicSalary)
				e.ID = 1
				return nil
			})
		deps.redismock.ExpectDel(employee.GetDepartmentKey("Eng")).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Eng", resp.Department)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("invalid basic salary never opens a transaction", func(t *testing.T) {
		for _, salary := range []string{"abc", "-5", "NaN", "Inf", ""} {
			deps := setupServiceTest(t)

			_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{Name: "Ann", BasicSalary: salary})

			assert.True(t, apperror.IsValidation(err), salary)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			deps.db.Close()
		}
	})

	t.Run("empty name is accepted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "", e.Name)
				e.ID = 4
				return nil
			})
		deps.redismock.ExpectDel(employee.GetDepartmentKey("")).SetVal(0)

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{BasicSalary: "10"})

		assert.NoError(t, err)
		assert.Equal(t, int64(4), resp.ID)
		assert.Equal(t, "", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("zero salary is accepted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(employee.GetDepartmentKey("")).SetVal(0)

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{Name: "Intern", BasicSalary: "0"})

		assert.NoError(t, err)
		assert.Equal(t, 0.0, resp.BasicSalary)
	})

	t.Run("store failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{Name: "Ann", BasicSalary: "1"})

		assert.True(t, apperror.IsStorage(err))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	deps.repo.EXPECT().FindAll(ctx).Return([]employee.Employee{
		{ID: 1, Name: "Ann"},
		{ID: 2, Name: "Bob"},
	}, nil)

	resp, err := deps.service.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Ann", resp[0].Name)
	assert.Equal(t, int64(2), resp[1].ID)
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, int64(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, 9)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	req := employee.UpdateEmployeeRequest{
		Name:        "Ann B",
		Designation: "Lead",
		Department:  "Ops",
		BasicSalary: "4000.50",
	}

	t.Run("success invalidates old and new department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(1)).Return(&employee.Employee{ID: 1, Name: "Ann", Department: "Eng", BasicSalary: 3000}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Ann B", e.Name)
				assert.Equal(t, "Lead", e.Designation)
				assert.Equal(t, "Ops", e.Department)
				assert.Equal(t, 4000.50, e.BasicSalary)
				return nil
			})
		deps.redismock.ExpectDel(employee.GetDepartmentKey("Eng"), employee.GetDepartmentKey("Ops")).SetVal(2)

		resp, err := deps.service.Update(ctx, 1, req)

		assert.NoError(t, err)
		assert.Equal(t, "Ops", resp.Department)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 42, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation precedes lookup", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		bad := req
		bad.BasicSalary = "-1"
		_, err := deps.service.Update(ctx, 42, bad)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidBasicSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(1)).Return(&employee.Employee{ID: 1, Department: "Eng"}, nil)
		deps.repo.EXPECT().DeleteWithDependents(ctx, int64(1)).Return(nil)
		deps.redismock.ExpectDel(employee.GetDepartmentKey("Eng")).SetVal(1)

		err := deps.service.Delete(ctx, 1)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(5)).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, 5)

		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("cascade failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(1)).Return(&employee.Employee{ID: 1}, nil)
		deps.repo.EXPECT().DeleteWithDependents(ctx, int64(1)).Return(errors.New("locked"))

		err := deps.service.Delete(ctx, 1)

		assert.True(t, apperror.IsStorage(err))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_SearchByDepartment(t *testing.T) {
	ctx := context.Background()
	key := employee.GetDepartmentKey("Eng")

	t.Run("cache hit skips the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []employee.EmployeeResponse{{ID: 1, Name: "Ann", Department: "Eng"}}
		data, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(key).SetVal(string(data))

		resp, err := deps.service.SearchByDepartment(ctx, "Eng")

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss reads store and fills cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindByDepartment(ctx, "Eng").Return([]employee.Employee{{ID: 3, Name: "Cy", Department: "Eng"}}, nil)

		want := []employee.EmployeeResponse{{ID: 3, Name: "Cy", Department: "Eng"}}
		data, _ := json.Marshal(want)
		deps.redismock.ExpectSet(key, data, time.Hour).SetVal("OK")

		resp, err := deps.service.SearchByDepartment(ctx, "Eng")

		assert.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("no match without cache yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, _, _ := sqlmock.New()
		defer db.Close()
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(db, repo, nil, 0)

		repo.EXPECT().FindByDepartment(ctx, "Nowhere").Return(nil, nil)

		resp, err := svc.SearchByDepartment(ctx, "Nowhere")

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}
