package leave

type Leave struct {
	ID         int64        `gorm:"column:leave_id;primaryKey;autoIncrement"`
	EmployeeID int64        `gorm:"column:emp_id;not null"`
	StartDate  string       `gorm:"column:start_date;type:varchar(10);not null"`
	EndDate    string       `gorm:"column:end_date;type:varchar(10);not null"`
	Reason     string       `gorm:"column:reason;type:text"`
	Status     string       `gorm:"column:status;type:varchar(10);not null"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

type EmployeeRef struct {
	ID   int64  `gorm:"column:emp_id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
