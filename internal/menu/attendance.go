package menu

import (
	"context"
	"fmt"
	"strconv"

	"go-payroll/internal/attendance"
)

func (m *Menu) markAttendance(ctx context.Context) error {
	id, err := m.readID("Enter Employee ID: ", "Employee ID")
	if err != nil {
		return err
	}
	date, err := m.readLine("Enter Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	status, err := m.readLine("Enter Status (Present/Absent/Half-day): ")
	if err != nil {
		return err
	}

	_, err = m.svc.Attendance.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: id,
		Date:       date,
		Status:     status,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Attendance marked")
	return nil
}

func (m *Menu) viewAttendance(ctx context.Context) error {
	records, err := m.svc.Attendance.GetAll(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.EmployeeID, 10),
			r.EmployeeName,
			r.Date,
			r.Status,
		}
	}
	printTable(m.out, []string{"ID", "EMP ID", "NAME", "DATE", "STATUS"}, rows)
	return nil
}
