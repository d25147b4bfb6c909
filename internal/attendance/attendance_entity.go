package attendance

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half-day"
)

type Attendance struct {
	ID         int64        `gorm:"column:att_id;primaryKey;autoIncrement"`
	EmployeeID int64        `gorm:"column:emp_id;not null"`
	Date       string       `gorm:"column:date;type:varchar(10);not null"`
	Status     string       `gorm:"column:status;type:varchar(10);not null"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type EmployeeRef struct {
	ID   int64  `gorm:"column:emp_id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
