package attendance

import "context"

// AttendanceService defines business logic for attendance marking.
type AttendanceService interface {
	// Mark records today's attendance for one employee. A "present" mark at
	// or after the late cutoff is stored as "late". A second non-correction
	// mark for the same day fails with ErrAlreadyMarked.
	Mark(ctx context.Context, req MarkRequest) (RecordResponse, error)

	// MarkEarlyOff corrects today's existing record with a clock-out and the
	// derived early-leave hours. It never creates a record and never changes
	// the stored status.
	MarkEarlyOff(ctx context.Context, req EarlyOffRequest) (RecordResponse, error)

	// ListForDate returns all records of one date (admin view).
	ListForDate(ctx context.Context, date string) ([]RecordResponse, error)

	// GetMonthly returns one employee's records inside a salary month.
	GetMonthly(ctx context.Context, employeeUID, salaryMonthKey string) ([]RecordResponse, error)

	// Update lets an admin fix a stored record.
	Update(ctx context.Context, req UpdateRequest) (RecordResponse, error)

	Delete(ctx context.Context, date, employeeUID string) error
}
