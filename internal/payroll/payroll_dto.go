package payroll

type GeneratePayrollRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required,gt=0"`
	Month      string `json:"month" binding:"required"`
}

type PayrollResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Month        string  `json:"month"`
	BasicSalary  float64 `json:"basic_salary"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
	NetSalary    float64 `json:"net_salary"`
	GeneratedAt  string  `json:"generated_at"`
}
