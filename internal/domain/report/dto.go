package report

import "github.com/shopspring/decimal"

// SalaryReport is a derived aggregate, never persisted: one employee's
// classified days and itemized deductions for one salary month.
type SalaryReport struct {
	EmployeeUID   string          `json:"employee_uid"`
	EmployeeName  string          `json:"employee_name"`
	EmpCode       string          `json:"emp_code"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`

	PresentDays     int     `json:"present_days"`
	LeaveDays       int     `json:"leave_days"`
	OffDays         int     `json:"off_days"`
	UnmarkedDays    int     `json:"unmarked_days"`
	LateCount       int     `json:"late_count"`
	EarlyLeaveHours float64 `json:"early_leave_hours"`

	OffDeduction        decimal.Decimal `json:"off_deduction"`
	LateDeduction       decimal.Decimal `json:"late_deduction"`
	EarlyLeaveDeduction decimal.Decimal `json:"early_leave_deduction"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetSalary           decimal.Decimal `json:"net_salary"`
}
