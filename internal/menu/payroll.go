package menu

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/apperror"
)

func (m *Menu) generatePayroll(ctx context.Context) error {
	month, err := m.readLine("Enter Month (YYYY-MM): ")
	if err != nil {
		return err
	}
	id, err := m.readID("Enter Employee ID for Payroll: ", "Employee ID")
	if err != nil {
		return err
	}

	p, err := m.svc.Payroll.Generate(ctx, payroll.GeneratePayrollRequest{EmployeeID: id, Month: month})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Payroll generated. Net Salary: %.2f\n", p.NetSalary)
	return nil
}

func (m *Menu) viewPayroll(ctx context.Context) error {
	payrolls, err := m.svc.Payroll.GetAll(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, len(payrolls))
	for i, p := range payrolls {
		rows[i] = []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.EmployeeID, 10),
			p.EmployeeName,
			p.Month,
			amount(p.BasicSalary),
			amount(p.Allowances),
			amount(p.Deductions),
			amount(p.NetSalary),
			p.GeneratedAt,
		}
	}
	printTable(m.out, []string{"ID", "EMP ID", "NAME", "MONTH", "BASIC", "ALLOWANCES", "DEDUCTIONS", "NET", "GENERATED AT"}, rows)
	return nil
}

func (m *Menu) exportPayslip(ctx context.Context) error {
	id, err := m.readID("Enter Payroll ID: ", "Payroll ID")
	if err != nil {
		return err
	}

	pdf, err := m.svc.Payroll.Payslip(ctx, id)
	if err != nil {
		return err
	}

	path, err := m.exportPath(fmt.Sprintf("payslip_%d.pdf", id))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return exportError(err)
	}
	fmt.Fprintf(m.out, "Payslip written to %s\n", path)
	return nil
}

func (m *Menu) exportRegister(ctx context.Context) (err error) {
	path, err := m.exportPath("payroll_register.csv")
	if err != nil {
		return err
	}

	// the register replaces path only once it is complete
	f, err := os.CreateTemp(m.exportDir, ".payroll_register-*.csv")
	if err != nil {
		return exportError(err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err := m.svc.Payroll.ExportCSV(ctx, f); err != nil {
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		return exportError(err)
	}
	if err := f.Sync(); err != nil {
		return exportError(err)
	}
	if err := f.Close(); err != nil {
		return exportError(err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return exportError(err)
	}
	fmt.Fprintf(m.out, "Payroll register written to %s\n", path)
	return nil
}

func (m *Menu) exportPath(name string) (string, error) {
	if err := os.MkdirAll(m.exportDir, 0o755); err != nil {
		return "", exportError(err)
	}
	return filepath.Join(m.exportDir, name), nil
}

func exportError(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError, "Failed to write export file", http.StatusInternalServerError)
}
