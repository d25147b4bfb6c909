package migration

import "time"

// Table snapshots as of version 1. They are frozen: later schema changes get
// a new migration, never an edit here. Entity structs in the domain packages
// map onto these tables independently.
//
// employeeV1 keys on ID so the Employee fields below resolve as belongs-to
// and CreateTable emits FOREIGN KEY(emp_id) REFERENCES employees(emp_id).

type employeeV1 struct {
	ID          int64   `gorm:"column:emp_id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;not null"`
	Designation string  `gorm:"column:designation"`
	Department  string  `gorm:"column:department"`
	BasicSalary float64 `gorm:"column:basic_salary"`
}

func (employeeV1) TableName() string { return "employees" }

type attendanceV1 struct {
	AttID    int64      `gorm:"column:att_id;primaryKey;autoIncrement"`
	EmpID    int64      `gorm:"column:emp_id;not null;index:idx_attendance_emp_date,priority:1"`
	Date     string     `gorm:"column:date;type:varchar(10);not null;index:idx_attendance_emp_date,priority:2"`
	Status   string     `gorm:"column:status;type:varchar(10);not null;check:chk_attendance_status,status IN ('Present','Absent','Half-day')"`
	Employee employeeV1 `gorm:"foreignKey:EmpID;references:ID"`
}

func (attendanceV1) TableName() string { return "attendance" }

type leaveV1 struct {
	LeaveID   int64      `gorm:"column:leave_id;primaryKey;autoIncrement"`
	EmpID     int64      `gorm:"column:emp_id;not null;index:idx_leaves_emp"`
	StartDate string     `gorm:"column:start_date;type:varchar(10);not null"`
	EndDate   string     `gorm:"column:end_date;type:varchar(10);not null"`
	Reason    string     `gorm:"column:reason;type:text"`
	Status    string     `gorm:"column:status;type:varchar(10);not null;default:'Pending';check:chk_leaves_status,status IN ('Pending','Approved','Rejected')"`
	Employee  employeeV1 `gorm:"foreignKey:EmpID;references:ID"`
}

func (leaveV1) TableName() string { return "leaves" }

type payrollV1 struct {
	PayrollID   int64      `gorm:"column:payroll_id;primaryKey;autoIncrement"`
	EmpID       int64      `gorm:"column:emp_id;not null;index:idx_payroll_emp_month,priority:1"`
	Month       string     `gorm:"column:month;type:varchar(7);not null;index:idx_payroll_emp_month,priority:2"`
	BasicSalary float64    `gorm:"column:basic_salary;not null"`
	Allowances  float64    `gorm:"column:allowances;not null"`
	Deductions  float64    `gorm:"column:deductions;not null"`
	NetSalary   float64    `gorm:"column:net_salary;not null"`
	GeneratedAt time.Time  `gorm:"column:generated_at;not null"`
	Employee    employeeV1 `gorm:"foreignKey:EmpID;references:ID"`
}

func (payrollV1) TableName() string { return "payroll" }

// employeeDepartmentV2 only declares the index added in version 5.
type employeeDepartmentV2 struct {
	Department string `gorm:"column:department;index:idx_employees_department"`
}

func (employeeDepartmentV2) TableName() string { return "employees" }
