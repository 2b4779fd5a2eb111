package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const recordColumns = `salary_month_key, date, employee_uid, status, in_time, out_time,
	late_minutes, early_leave_hours, leave_reason, marked_by, created_at, updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.SalaryMonthKey, &rec.Date, &rec.EmployeeUID, &rec.Status,
		&rec.InTime, &rec.OutTime, &rec.LateMinutes, &rec.EarlyLeaveHours,
		&rec.LeaveReason, &rec.MarkedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// EnsureDateBucket implements attendance.AttendanceRepository. The bucket row
// mirrors the original store's parent date document: an idempotent upsert so
// listing-by-date never misses a date container.
func (r *attendanceRepository) EnsureDateBucket(ctx context.Context, salaryMonthKey, date string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_dates (salary_month_key, date)
		VALUES ($1, $2)
		ON CONFLICT (date) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, salaryMonthKey, date); err != nil {
		return fmt.Errorf("failed to ensure date bucket: %w", err)
	}
	return nil
}

// Create implements attendance.AttendanceRepository. The duplicate-mark
// decision is made by the service's prior read, not here.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			salary_month_key, date, employee_uid, status, in_time, out_time,
			late_minutes, early_leave_hours, leave_reason, marked_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.SalaryMonthKey, rec.Date, rec.EmployeeUID, rec.Status,
		rec.InTime, rec.OutTime, rec.LateMinutes, rec.EarlyLeaveHours,
		rec.LeaveReason, rec.MarkedBy,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByDateAndEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByDateAndEmployee(ctx context.Context, date, employeeUID string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE date = $1 AND employee_uid = $2
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, date, employeeUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no existing mark
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE date = $1
		ORDER BY employee_uid
	`

	return r.queryRecords(ctx, q, query, date)
}

// ListByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByMonth(ctx context.Context, employeeUID, startDate, endDate string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE employee_uid = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	return r.queryRecords(ctx, q, query, employeeUID, startDate, endDate)
}

func (r *attendanceRepository) queryRecords(ctx context.Context, q database.Querier, query string, args ...any) ([]attendance.Record, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET status = $3, in_time = $4, out_time = $5, late_minutes = $6,
			early_leave_hours = $7, leave_reason = $8, updated_at = NOW()
		WHERE date = $1 AND employee_uid = $2
	`

	tag, err := q.Exec(ctx, query,
		rec.Date, rec.EmployeeUID, rec.Status, rec.InTime, rec.OutTime,
		rec.LateMinutes, rec.EarlyLeaveHours, rec.LeaveReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, date, employeeUID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM attendance_records WHERE date = $1 AND employee_uid = $2`,
		date, employeeUID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
