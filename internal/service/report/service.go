package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/domain/settings"
	"github.com/attendly/attendance-backend-go/internal/pkg/salary"
	"github.com/attendly/attendance-backend-go/internal/pkg/salarymonth"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	settingsSvc    settings.SettingsService
	policy         salary.Policy

	now func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	settingsSvc settings.SettingsService,
	policy salary.Policy,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		settingsSvc:    settingsSvc,
		policy:         policy,
		now:            time.Now,
	}
}

// CalculateMonthlySalary implements report.ReportService.
func (s *ReportServiceImpl) CalculateMonthlySalary(ctx context.Context, employeeUID, salaryMonthKey string) (*report.SalaryReport, error) {
	emp, err := s.employeeRepo.GetByUID(ctx, employeeUID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	cfg, err := s.settingsSvc.Resolved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings: %w", err)
	}

	window, err := salarymonth.FromKey(salaryMonthKey, cfg.StartDay())
	if err != nil {
		return nil, err
	}

	startStr := window.Start.Format("2006-01-02")
	endStr := window.End.Format("2006-01-02")

	// Records and holidays are independent; fetch them together and fail
	// fast if either fetch fails. No partial report.
	var (
		records  []attendance.Record
		holidays []holiday.Holiday
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByMonth(gctx, employeeUID, startStr, endStr)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		holidays, err = s.holidayRepo.ListBetween(gctx, startStr, endStr)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}
	holidaySet := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Date] = struct{}{}
	}

	today := s.now().Format("2006-01-02")

	rep := report.SalaryReport{
		EmployeeUID:   emp.UID,
		EmployeeName:  emp.Name,
		EmpCode:       emp.EmpCode,
		MonthlySalary: emp.MonthlySalary,
	}

	for _, day := range window.Days() {
		date := day.Format("2006-01-02")
		if date > today {
			// Future days contribute to no bucket.
			break
		}

		rec, marked := byDate[date]
		if !marked {
			if _, isHoliday := holidaySet[date]; !isHoliday {
				rep.UnmarkedDays++
			}
			continue
		}

		switch rec.Status {
		case attendance.StatusPresent:
			rep.PresentDays++
		case attendance.StatusLate:
			// Late is a present-day variant.
			rep.PresentDays++
			rep.LateCount++
		case attendance.StatusLeave:
			rep.LeaveDays++
		case attendance.StatusOff:
			rep.OffDays++
		}

		if rec.EarlyLeaveHours != nil {
			rep.EarlyLeaveHours += *rec.EarlyLeaveHours
		}
	}

	// Unmarked days deduct exactly like explicit off days.
	d := salary.Calculate(emp.MonthlySalary, rep.OffDays+rep.UnmarkedDays,
		rep.LateCount, rep.EarlyLeaveHours, s.policy)

	rep.OffDeduction = d.Off
	rep.LateDeduction = d.Late
	rep.EarlyLeaveDeduction = d.EarlyLeave
	rep.TotalDeductions = d.Total
	rep.NetSalary = salary.NetSalary(emp.MonthlySalary, d)

	return &rep, nil
}

// GenerateMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, salaryMonthKey string) ([]report.SalaryReport, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	reports := make([]report.SalaryReport, 0, len(employees))
	for _, emp := range employees {
		rep, err := s.CalculateMonthlySalary(ctx, emp.UID, salaryMonthKey)
		if err != nil {
			return nil, err
		}
		if rep != nil {
			reports = append(reports, *rep)
		}
	}
	return reports, nil
}
