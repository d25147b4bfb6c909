package payroll

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var registerHeaders = []string{
	"payroll_id",
	"emp_id",
	"name",
	"month",
	"basic_salary",
	"allowances",
	"deductions",
	"net_salary",
	"generated_at",
}

func writeRegisterCSV(w io.Writer, rows []PayrollResponse) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(registerHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, p := range rows {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.EmployeeID, 10),
			p.EmployeeName,
			p.Month,
			money(p.BasicSalary),
			money(p.Allowances),
			money(p.Deductions),
			money(p.NetSalary),
			p.GeneratedAt,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
