package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/settings"
	"github.com/attendly/attendance-backend-go/internal/pkg/salary"
	"github.com/attendly/attendance-backend-go/internal/pkg/salarymonth"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	settingsSvc    settings.SettingsService
	policy         salary.Policy

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	settingsSvc settings.SettingsService,
	policy salary.Policy,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		settingsSvc:    settingsSvc,
		policy:         policy,
		now:            time.Now,
	}
}

// markerFromContext pulls the acting identity out of the JWT claims.
func markerFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	uid, ok := claims["user_id"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return uid, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	markedBy, err := markerFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	cfg, err := s.settingsSvc.Resolved(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve settings: %w", err)
	}

	now := s.now()
	dateStr := now.Format("2006-01-02")
	key := salarymonth.Key(salarymonth.For(now, cfg.StartDay()))

	// Read-then-write duplicate check. Deliberately not a conditional
	// insert: two near-simultaneous marks can both pass, matching the
	// source system's behavior.
	existing, err := s.attendanceRepo.GetByDateAndEmployee(ctx, dateStr, req.EmployeeUID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check existing mark: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyMarked
	}

	rec := attendance.Record{
		SalaryMonthKey: key,
		Date:           dateStr,
		EmployeeUID:    req.EmployeeUID,
		Status:         req.Status,
		MarkedBy:       markedBy,
	}

	switch req.Status {
	case attendance.StatusPresent:
		inTime := now
		rec.InTime = &inTime
		if salary.IsLate(now, s.policy) {
			rec.Status = attendance.StatusLate
			late := salary.LateMinutes(now, s.policy)
			rec.LateMinutes = &late
		}
	case attendance.StatusLeave:
		// No lateness check for leave.
		if req.LeaveReason != "" {
			reason := req.LeaveReason
			rec.LeaveReason = &reason
		}
	}

	// The date bucket must exist before the record so listing-by-date never
	// misses the date.
	if err := s.attendanceRepo.EnsureDateBucket(ctx, key, dateStr); err != nil {
		return attendance.RecordResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// MarkEarlyOff implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkEarlyOff(ctx context.Context, req attendance.EarlyOffRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := markerFromContext(ctx); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.now()
	dateStr := now.Format("2006-01-02")

	existing, err := s.attendanceRepo.GetByDateAndEmployee(ctx, dateStr, req.EmployeeUID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}
	if existing == nil {
		// The correction path never creates a record.
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}

	outTime := now
	hours := salary.EarlyLeaveHours(outTime, s.policy)
	existing.OutTime = &outTime
	existing.EarlyLeaveHours = &hours

	if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapRecordToResponse(*existing), nil
}

// ListForDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForDate(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for date: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

// GetMonthly implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthly(ctx context.Context, employeeUID, salaryMonthKey string) ([]attendance.RecordResponse, error) {
	cfg, err := s.settingsSvc.Resolved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings: %w", err)
	}

	window, err := salarymonth.FromKey(salaryMonthKey, cfg.StartDay())
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, employeeUID,
		window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly attendance: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByDateAndEmployee(ctx, req.Date, req.EmployeeUID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if existing == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}

	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.LateMinutes != nil {
		existing.LateMinutes = req.LateMinutes
	}
	if req.EarlyLeaveHours != nil {
		existing.EarlyLeaveHours = req.EarlyLeaveHours
	}
	if req.LeaveReason != nil {
		existing.LeaveReason = req.LeaveReason
	}

	if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapRecordToResponse(*existing), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, date, employeeUID string) error {
	if err := s.attendanceRepo.Delete(ctx, date, employeeUID); err != nil {
		return err
	}
	return nil
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		SalaryMonthKey:  rec.SalaryMonthKey,
		Date:            rec.Date,
		EmployeeUID:     rec.EmployeeUID,
		Status:          rec.Status,
		InTime:          timePtrToString(rec.InTime),
		OutTime:         timePtrToString(rec.OutTime),
		LateMinutes:     rec.LateMinutes,
		EarlyLeaveHours: rec.EarlyLeaveHours,
		LeaveReason:     rec.LeaveReason,
		MarkedBy:        rec.MarkedBy,
	}
}
