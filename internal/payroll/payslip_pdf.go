package payroll

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

func renderPayslipPDF(p PayrollResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; names arrive as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "PAYSLIP", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Pay period "+p.Month, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	employee := fmt.Sprintf("#%d", p.EmployeeID)
	if p.EmployeeName != "" {
		employee = fmt.Sprintf("%s (#%d)", p.EmployeeName, p.EmployeeID)
	}

	rows := [][2]string{
		{"Payroll ID", strconv.FormatInt(p.ID, 10)},
		{"Employee", employee},
		{"Month", p.Month},
		{"Basic Salary", money(p.BasicSalary)},
		{"Allowances", money(p.Allowances)},
		{"Deductions", money(p.Deductions)},
	}

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.CellFormat(70, 8, row[0], "1", 0, "", false, 0, "")
		pdf.CellFormat(110, 8, tr(row[1]), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 9, "Net Salary", "1", 0, "", true, 0, "")
	pdf.CellFormat(110, 9, money(p.NetSalary), "1", 1, "R", true, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 5, "Generated at "+p.GeneratedAt, "", 1, "", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
