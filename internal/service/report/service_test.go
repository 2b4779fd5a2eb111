package report

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
	"github.com/attendly/attendance-backend-go/internal/domain/settings"
	"github.com/attendly/attendance-backend-go/internal/pkg/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.UID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUID(ctx context.Context, uid string) (employee.Employee, error) {
	emp, ok := f.employees[uid]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) SetActive(ctx context.Context, uid string, active bool) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, uid string) error { return nil }

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) EnsureDateBucket(ctx context.Context, salaryMonthKey, date string) error {
	return nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByDateAndEmployee(ctx context.Context, date, employeeUID string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByMonth(ctx context.Context, employeeUID, startDate, endDate string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeUID == employeeUID && rec.Date >= startDate && rec.Date <= endDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error { return nil }

func (f *fakeAttendanceRepo) Delete(ctx context.Context, date, employeeUID string) error { return nil }

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) Get(ctx context.Context, date string) (*holiday.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) ListBetween(ctx context.Context, startDate, endDate string) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.Date >= startDate && h.Date <= endDate {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, date string) error { return nil }

type fakeSettingsService struct{}

func (f *fakeSettingsService) Get(ctx context.Context) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{}, nil
}

func (f *fakeSettingsService) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{}, nil
}

func (f *fakeSettingsService) Resolved(ctx context.Context) (settings.PortalSettings, error) {
	return settings.Defaults(), nil
}

func record(date string, uid string, status attendance.Status) attendance.Record {
	return attendance.Record{
		SalaryMonthKey: "2024-02",
		Date:           date,
		EmployeeUID:    uid,
		Status:         status,
	}
}

func newTestService(empRepo *fakeEmployeeRepo, attRepo *fakeAttendanceRepo, holRepo *fakeHolidayRepo, now time.Time) *ReportServiceImpl {
	svc := NewReportService(empRepo, attRepo, holRepo, &fakeSettingsService{}, salary.DefaultPolicy())
	svc.now = func() time.Time { return now }
	return svc
}

func TestCalculateMonthlySalary(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			UID:           "emp-1",
			Name:          "Asha Verma",
			EmpCode:       "E001",
			MonthlySalary: decimal.NewFromInt(30000),
		},
	}}

	hours := 1.5
	late := record("2024-02-08", "emp-1", attendance.StatusLate)
	late.EarlyLeaveHours = &hours

	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		record("2024-02-06", "emp-1", attendance.StatusPresent),
		record("2024-02-07", "emp-1", attendance.StatusPresent),
		late,
		record("2024-02-09", "emp-1", attendance.StatusLeave),
		record("2024-02-10", "emp-1", attendance.StatusOff),
	}}

	holRepo := &fakeHolidayRepo{holidays: []holiday.Holiday{
		{Date: "2024-02-11"}, // Sunday
	}}

	// "Today" is 2024-02-13, so 02-12 is the only past unmarked non-holiday
	// day and 02-13 itself counts too.
	now := time.Date(2024, time.February, 13, 12, 0, 0, 0, time.UTC)
	svc := newTestService(empRepo, attRepo, holRepo, now)

	rep, err := svc.CalculateMonthlySalary(context.Background(), "emp-1", "2024-02")
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.Equal(t, 3, rep.PresentDays, "late counts as present")
	assert.Equal(t, 1, rep.LateCount)
	assert.Equal(t, 1, rep.LeaveDays)
	assert.Equal(t, 1, rep.OffDays)
	assert.Equal(t, 2, rep.UnmarkedDays, "2024-02-12 and 2024-02-13")
	assert.Equal(t, 1.5, rep.EarlyLeaveHours)

	// daily 1000: off bucket = (1 off + 2 unmarked) * 1000
	assert.True(t, rep.OffDeduction.Equal(decimal.NewFromInt(3000)), "off deduction: %s", rep.OffDeduction)
	assert.True(t, rep.LateDeduction.Equal(decimal.NewFromInt(500)), "late deduction: %s", rep.LateDeduction)
	assert.True(t, rep.EarlyLeaveDeduction.Equal(decimal.NewFromFloat(187.5)), "early leave deduction: %s", rep.EarlyLeaveDeduction)
	assert.True(t, rep.TotalDeductions.Equal(decimal.NewFromFloat(3687.5)), "total: %s", rep.TotalDeductions)
	assert.True(t, rep.NetSalary.Equal(decimal.NewFromFloat(26312.5)), "net: %s", rep.NetSalary)
}

func TestCalculateMonthlySalaryUnknownEmployee(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	svc := newTestService(empRepo, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, time.Now())

	rep, err := svc.CalculateMonthlySalary(context.Background(), "ghost", "2024-02")
	require.NoError(t, err)
	assert.Nil(t, rep)
}

func TestCalculateMonthlySalarySkipsFutureDays(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {UID: "emp-1", MonthlySalary: decimal.NewFromInt(30000)},
	}}

	// First day of the window is "today"; nothing is unmarked yet.
	now := time.Date(2024, time.February, 6, 8, 0, 0, 0, time.UTC)
	svc := newTestService(empRepo, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, now)

	rep, err := svc.CalculateMonthlySalary(context.Background(), "emp-1", "2024-02")
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.Equal(t, 1, rep.UnmarkedDays, "only today itself is classifiable")
	assert.Zero(t, rep.PresentDays)
}

func TestGenerateMonthlyReport(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {UID: "emp-1", MonthlySalary: decimal.NewFromInt(30000)},
		"emp-2": {UID: "emp-2", MonthlySalary: decimal.NewFromInt(45000)},
	}}

	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(empRepo, &fakeAttendanceRepo{}, &fakeHolidayRepo{}, now)

	reports, err := svc.GenerateMonthlyReport(context.Background(), "2024-02")
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}
