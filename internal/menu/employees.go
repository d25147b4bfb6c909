package menu

import (
	"context"
	"fmt"
	"strconv"

	"go-payroll/internal/employee"
)

var employeeHeaders = []string{"ID", "NAME", "DESIGNATION", "DEPARTMENT", "BASIC SALARY"}

func (m *Menu) addEmployee(ctx context.Context) error {
	var req employee.CreateEmployeeRequest
	var err error
	if req.Name, err = m.readLine("Enter Name: "); err != nil {
		return err
	}
	if req.Designation, err = m.readLine("Enter Designation: "); err != nil {
		return err
	}
	if req.Department, err = m.readLine("Enter Department: "); err != nil {
		return err
	}
	if req.BasicSalary, err = m.readLine("Enter Basic Salary: "); err != nil {
		return err
	}

	emp, err := m.svc.Employees.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Employee added with ID %d\n", emp.ID)
	return nil
}

func (m *Menu) viewEmployees(ctx context.Context) error {
	employees, err := m.svc.Employees.GetAll(ctx)
	if err != nil {
		return err
	}
	m.printEmployees(employees)
	return nil
}

func (m *Menu) updateEmployee(ctx context.Context) error {
	id, err := m.readID("Enter Employee ID to update: ", "Employee ID")
	if err != nil {
		return err
	}

	var req employee.UpdateEmployeeRequest
	if req.Name, err = m.readLine("New Name: "); err != nil {
		return err
	}
	if req.Designation, err = m.readLine("New Designation: "); err != nil {
		return err
	}
	if req.Department, err = m.readLine("New Department: "); err != nil {
		return err
	}
	if req.BasicSalary, err = m.readLine("New Basic Salary: "); err != nil {
		return err
	}

	if _, err := m.svc.Employees.Update(ctx, id, req); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Employee updated")
	return nil
}

func (m *Menu) deleteEmployee(ctx context.Context) error {
	id, err := m.readID("Enter Employee ID to delete: ", "Employee ID")
	if err != nil {
		return err
	}
	if err := m.svc.Employees.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Employee deleted")
	return nil
}

func (m *Menu) searchByDepartment(ctx context.Context) error {
	department, err := m.readLine("Enter Department: ")
	if err != nil {
		return err
	}
	employees, err := m.svc.Employees.SearchByDepartment(ctx, department)
	if err != nil {
		return err
	}
	m.printEmployees(employees)
	return nil
}

func (m *Menu) printEmployees(employees []employee.EmployeeResponse) {
	rows := make([][]string, len(employees))
	for i, e := range employees {
		rows[i] = []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			e.Designation,
			e.Department,
			amount(e.BasicSalary),
		}
	}
	printTable(m.out, employeeHeaders, rows)
}
