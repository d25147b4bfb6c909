package attendance

type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required,gt=0"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required,oneof=Present Absent Half-day"`
}

type AttendanceResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}
