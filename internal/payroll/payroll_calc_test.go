package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-payroll/internal/attendance"
	"go-payroll/internal/payroll"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		basic      float64
		statuses   []string
		deductions float64
		allowances float64
		net        float64
	}{
		{
			name:       "no attendance",
			basic:      3000,
			allowances: 300,
			net:        3300,
		},
		{
			name:  "absences and half days",
			basic: 3000,
			statuses: []string{
				attendance.StatusAbsent,
				attendance.StatusAbsent,
				attendance.StatusHalfDay,
				attendance.StatusPresent,
			},
			deductions: 250,
			allowances: 300,
			net:        3050,
		},
		{
			name:       "unknown statuses ignored",
			basic:      1500,
			statuses:   []string{"Sick", attendance.StatusPresent},
			allowances: 150,
			net:        1650,
		},
		{
			name:       "net may go negative",
			basic:      300,
			statuses:   repeat(attendance.StatusAbsent, 40),
			deductions: 400,
			allowances: 30,
			net:        -70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := payroll.Compute(tt.basic, tt.statuses)
			assert.InDelta(t, tt.deductions, b.Deductions, 1e-9)
			assert.InDelta(t, tt.allowances, b.Allowances, 1e-9)
			assert.InDelta(t, tt.net, b.NetSalary, 1e-9)
		})
	}
}

func TestCompute_Counts(t *testing.T) {
	b := payroll.Compute(3000, []string{attendance.StatusAbsent, attendance.StatusHalfDay, attendance.StatusHalfDay})
	assert.Equal(t, 1, b.AbsentDays)
	assert.Equal(t, 2, b.HalfDays)
	assert.InDelta(t, 100.0, b.PerDayRate, 1e-9)
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
