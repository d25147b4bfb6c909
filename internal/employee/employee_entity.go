package employee

type Employee struct {
	ID          int64   `gorm:"column:emp_id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name"`
	Designation string  `gorm:"column:designation"`
	Department  string  `gorm:"column:department"`
	BasicSalary float64 `gorm:"column:basic_salary"`
}

func (Employee) TableName() string { return "employees" }
