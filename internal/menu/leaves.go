package menu

import (
	"context"
	"fmt"
	"strconv"

	"go-payroll/internal/leave"
)

func (m *Menu) applyLeave(ctx context.Context) error {
	id, err := m.readID("Enter Employee ID: ", "Employee ID")
	if err != nil {
		return err
	}

	req := leave.ApplyLeaveRequest{EmployeeID: id}
	if req.StartDate, err = m.readLine("Start Date (YYYY-MM-DD): "); err != nil {
		return err
	}
	if req.EndDate, err = m.readLine("End Date (YYYY-MM-DD): "); err != nil {
		return err
	}
	if req.Reason, err = m.readLine("Reason: "); err != nil {
		return err
	}

	l, err := m.svc.Leaves.Apply(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Leave applied with ID %d\n", l.ID)
	return nil
}

func (m *Menu) viewLeaves(ctx context.Context) error {
	leaves, err := m.svc.Leaves.GetAll(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, len(leaves))
	for i, l := range leaves {
		rows[i] = []string{
			strconv.FormatInt(l.ID, 10),
			strconv.FormatInt(l.EmployeeID, 10),
			l.EmployeeName,
			l.StartDate,
			l.EndDate,
			l.Reason,
			l.Status,
		}
	}
	printTable(m.out, []string{"ID", "EMP ID", "NAME", "START", "END", "REASON", "STATUS"}, rows)
	return nil
}

func (m *Menu) approveLeave(ctx context.Context) error {
	id, err := m.readID("Enter Leave ID to Approve: ", "Leave ID")
	if err != nil {
		return err
	}
	if _, err := m.svc.Leaves.Approve(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Leave approved")
	return nil
}

func (m *Menu) rejectLeave(ctx context.Context) error {
	id, err := m.readID("Enter Leave ID to Reject: ", "Leave ID")
	if err != nil {
		return err
	}
	if _, err := m.svc.Leaves.Reject(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Leave rejected")
	return nil
}
