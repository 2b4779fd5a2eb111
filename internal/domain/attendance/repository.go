package attendance

import "context"

// AttendanceRepository defines data access for attendance records and their
// per-date buckets.
type AttendanceRepository interface {
	// EnsureDateBucket idempotently creates the per-date container row so
	// listing-by-date never misses an empty-seeming date. Must be called
	// before Create for a new date.
	EnsureDateBucket(ctx context.Context, salaryMonthKey, date string) error

	Create(ctx context.Context, rec Record) (Record, error)

	// GetByDateAndEmployee returns (nil, nil) when no record exists; Mark's
	// duplicate check depends on that.
	GetByDateAndEmployee(ctx context.Context, date, employeeUID string) (*Record, error)

	// ListByDate returns every record for one calendar date.
	ListByDate(ctx context.Context, date string) ([]Record, error)

	// ListByMonth returns every record for one employee inside one salary
	// month window, given the window's date bounds.
	ListByMonth(ctx context.Context, employeeUID, startDate, endDate string) ([]Record, error)

	Update(ctx context.Context, rec Record) error

	// Delete is the explicit administrative delete.
	Delete(ctx context.Context, date, employeeUID string) error
}
