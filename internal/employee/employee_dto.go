package employee

// BasicSalary is kept as entered and parsed by the service, so the menu and
// the HTTP surface reject the same inputs.
type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	BasicSalary string `json:"basic_salary" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	BasicSalary string `json:"basic_salary" binding:"required"`
}

type EmployeeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Department  string  `json:"department"`
	BasicSalary float64 `json:"basic_salary"`
}
