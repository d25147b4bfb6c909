package payroll

import "go-payroll/internal/attendance"

const (
	DaysPerMonth  = 30
	AllowanceRate = 0.10
)

type Breakdown struct {
	AbsentDays int
	HalfDays   int
	PerDayRate float64
	Allowances float64
	Deductions float64
	NetSalary  float64
}

// Compute derives a month's pay from the basic salary and that month's
// attendance statuses. An absence costs one day's rate and a half-day half of
// it; every other status is ignored. The net is not floored at zero.
func Compute(basicSalary float64, statuses []string) Breakdown {
	var b Breakdown
	for _, st := range statuses {
		switch st {
		case attendance.StatusAbsent:
			b.AbsentDays++
		case attendance.StatusHalfDay:
			b.HalfDays++
		}
	}

	b.PerDayRate = basicSalary / DaysPerMonth
	b.Deductions = float64(b.AbsentDays)*b.PerDayRate + float64(b.HalfDays)*b.PerDayRate/2
	b.Allowances = basicSalary * AllowanceRate
	b.NetSalary = basicSalary + b.Allowances - b.Deductions
	return b
}
