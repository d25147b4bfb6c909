package payroll

import "time"

// Payroll is an immutable snapshot taken at generation time. Several records
// for the same employee and month may coexist.
type Payroll struct {
	ID          int64        `gorm:"column:payroll_id;primaryKey;autoIncrement"`
	EmployeeID  int64        `gorm:"column:emp_id;not null"`
	Month       string       `gorm:"column:month;type:varchar(7);not null"`
	BasicSalary float64      `gorm:"column:basic_salary;not null"`
	Allowances  float64      `gorm:"column:allowances;not null"`
	Deductions  float64      `gorm:"column:deductions;not null"`
	NetSalary   float64      `gorm:"column:net_salary;not null"`
	GeneratedAt time.Time    `gorm:"column:generated_at;not null"`
	Employee    *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Payroll) TableName() string {
	return "payroll"
}

type EmployeeRef struct {
	ID   int64  `gorm:"column:emp_id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
