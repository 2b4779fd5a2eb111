package holiday

import "context"

// HolidayService defines business logic for holiday management.
type HolidayService interface {
	Add(ctx context.Context, req AddHolidayRequest) (HolidayResponse, error)
	Get(ctx context.Context, date string) (HolidayResponse, error)

	// ListForMonth returns the holidays inside one salary month window.
	ListForMonth(ctx context.Context, salaryMonthKey string) ([]HolidayResponse, error)

	Delete(ctx context.Context, date string) error

	// SeedSundays creates a "Sunday" holiday for every Sunday of the year
	// that has no holiday yet. Re-running it is a no-op for existing dates.
	SeedSundays(ctx context.Context, year int) (SeedSundaysResponse, error)
}
