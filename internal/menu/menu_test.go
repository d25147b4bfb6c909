package menu_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/leave"
	leaveerrors "go-payroll/internal/leave/errors"
	"go-payroll/internal/menu"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
)

type fakeEmployees struct {
	employee.Service
	created  []employee.CreateEmployeeRequest
	deleted  []int64
	list     []employee.EmployeeResponse
	deleteFn func(id int64) error
}

func (f *fakeEmployees) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	f.created = append(f.created, req)
	return employee.EmployeeResponse{ID: int64(len(f.created)), Name: req.Name}, nil
}

func (f *fakeEmployees) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.list, nil
}

func (f *fakeEmployees) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil
}

func (f *fakeEmployees) SearchByDepartment(ctx context.Context, department string) ([]employee.EmployeeResponse, error) {
	var out []employee.EmployeeResponse
	for _, e := range f.list {
		if e.Department == department {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeAttendance struct {
	attendance.Service
	marked []attendance.MarkAttendanceRequest
}

func (f *fakeAttendance) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	f.marked = append(f.marked, req)
	return attendance.AttendanceResponse{ID: 1}, nil
}

type fakeLeaves struct {
	leave.Service
}

func (f *fakeLeaves) Approve(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
}

type fakePayroll struct {
	payroll.Service
	generated []payroll.GeneratePayrollRequest
	exportErr error
}

func (f *fakePayroll) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
	f.generated = append(f.generated, req)
	return payroll.PayrollResponse{ID: 1, NetSalary: 3050}, nil
}

func (f *fakePayroll) Payslip(ctx context.Context, id int64) ([]byte, error) {
	return []byte("%PDF-1.3"), nil
}

func (f *fakePayroll) ExportCSV(ctx context.Context, w io.Writer) error {
	if f.exportErr != nil {
		_, _ = io.WriteString(w, "payroll_id\n")
		return f.exportErr
	}
	_, err := io.WriteString(w, "payroll_id\n1\n")
	return err
}

type harness struct {
	employees  *fakeEmployees
	attendance *fakeAttendance
	payroll    *fakePayroll
	exportDir  string
}

func newHarness(t *testing.T) *harness {
	return &harness{
		employees:  &fakeEmployees{},
		attendance: &fakeAttendance{},
		payroll:    &fakePayroll{},
		exportDir:  filepath.Join(t.TempDir(), "exports"),
	}
}

func (h *harness) run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	m := menu.New(strings.NewReader(input), &out, menu.Services{
		Employees:  h.employees,
		Attendance: h.attendance,
		Leaves:     &fakeLeaves{},
		Payroll:    h.payroll,
	}, menu.WithExportDir(h.exportDir), menu.WithLogger(zap.NewNop()))
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func TestMenu_AddEmployeeAndExit(t *testing.T) {
	h := newHarness(t)
	out := h.run(t, "1\na\nAnn\nEngineer\nEng\n3000\n0\n6\n")

	require.Len(t, h.employees.created, 1)
	assert.Equal(t, employee.CreateEmployeeRequest{
		Name:        "Ann",
		Designation: "Engineer",
		Department:  "Eng",
		BasicSalary: "3000",
	}, h.employees.created[0])
	assert.Contains(t, out, "Employee added with ID 1")
	assert.Contains(t, out, "0. Back")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func TestMenu_InvalidChoicesRedisplay(t *testing.T) {
	h := newHarness(t)
	out := h.run(t, "9\n1\nz\n0\n")

	assert.Equal(t, 2, strings.Count(out, "Error: Invalid choice"))
	assert.Equal(t, 2, strings.Count(out, "Manage Employees\na. Add Employee"))
}

func TestMenu_EndOfInputExits(t *testing.T) {
	h := newHarness(t)
	out := h.run(t, "1\na\nAnn\n")

	assert.Empty(t, h.employees.created)
	assert.NotContains(t, out, "Exiting...")
}

func TestMenu_ErrorsAreReported(t *testing.T) {
	h := newHarness(t)
	h.employees.deleteFn = func(id int64) error { return employeeerrors.ErrEmployeeNotFound }

	out := h.run(t, "1\nd\nabc\nd\n42\n0\n3\nc\n5\n0\n6\n")

	assert.Contains(t, out, "Error: Employee ID is invalid")
	assert.Equal(t, []int64{42}, h.employees.deleted)
	assert.Contains(t, out, "Error: "+employeeerrors.ErrEmployeeNotFound.Message)
	assert.Contains(t, out, "Error: "+leaveerrors.ErrLeaveNotFound.Message)
	assert.Contains(t, out, "Exiting...")
}

func TestMenu_ViewAndSearchEmployees(t *testing.T) {
	h := newHarness(t)
	h.employees.list = []employee.EmployeeResponse{
		{ID: 1, Name: "Ann", Department: "Eng", BasicSalary: 3000},
		{ID: 2, Name: "Bob", Department: "Ops", BasicSalary: 2500.5},
	}

	out := h.run(t, "1\nb\n0\n5\na\nOps\na\nHR\n0\n6\n")

	assert.Contains(t, out, "3000.00")
	assert.Contains(t, out, "2500.50")
	assert.Contains(t, out, "No records found.")
}

func TestMenu_AttendanceAndPayroll(t *testing.T) {
	h := newHarness(t)
	out := h.run(t, "2\na\n1\n2024-03-01\nAbsent\n0\n4\na\n2024-03\n1\nc\n1\nd\n0\n6\n")

	require.Len(t, h.attendance.marked, 1)
	assert.Equal(t, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-03-01", Status: "Absent"}, h.attendance.marked[0])

	require.Len(t, h.payroll.generated, 1)
	assert.Equal(t, payroll.GeneratePayrollRequest{EmployeeID: 1, Month: "2024-03"}, h.payroll.generated[0])
	assert.Contains(t, out, "Payroll generated. Net Salary: 3050.00")

	pdf, err := os.ReadFile(filepath.Join(h.exportDir, "payslip_1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))

	csv, err := os.ReadFile(filepath.Join(h.exportDir, "payroll_register.csv"))
	require.NoError(t, err)
	assert.Equal(t, "payroll_id\n1\n", string(csv))
}

func TestMenu_CancelUnblocksPrompt(t *testing.T) {
	h := newHarness(t)
	pr, pw := io.Pipe()
	m := menu.New(pr, io.Discard, menu.Services{
		Employees:  h.employees,
		Attendance: h.attendance,
		Leaves:     &fakeLeaves{},
		Payroll:    h.payroll,
	}, menu.WithLogger(zap.NewNop()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	_, err := io.WriteString(pw, "1\n")
	require.NoError(t, err)

	cancel()
	_ = pr.CloseWithError(os.ErrClosed)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("menu kept waiting for input after cancellation")
	}
}

func TestMenu_FailedRegisterExportKeepsPreviousFile(t *testing.T) {
	h := newHarness(t)
	h.run(t, "4\nd\n0\n6\n")

	h.payroll.exportErr = payrollerrors.ErrExportFailed
	out := h.run(t, "4\nd\n0\n6\n")
	assert.Contains(t, out, "Error: "+payrollerrors.ErrExportFailed.Message)

	csv, err := os.ReadFile(filepath.Join(h.exportDir, "payroll_register.csv"))
	require.NoError(t, err)
	assert.Equal(t, "payroll_id\n1\n", string(csv))

	entries, err := os.ReadDir(h.exportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "payroll_register.csv", entries[0].Name())
}
