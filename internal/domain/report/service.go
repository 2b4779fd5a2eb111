package report

import "context"

// ReportService derives salary reports from attendance and holiday data.
type ReportService interface {
	// CalculateMonthlySalary returns (nil, nil) for an unknown employee so a
	// batch report skips them instead of failing.
	CalculateMonthlySalary(ctx context.Context, employeeUID, salaryMonthKey string) (*SalaryReport, error)

	// GenerateMonthlyReport runs CalculateMonthlySalary for every known
	// employee and collects the non-nil results.
	GenerateMonthlyReport(ctx context.Context, salaryMonthKey string) ([]SalaryReport, error)
}
