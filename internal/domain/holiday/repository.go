package holiday

import "context"

// HolidayRepository defines data access for holiday records.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// Get returns (nil, nil) when no holiday exists for the date; the Sunday
	// seed's existence check depends on that.
	Get(ctx context.Context, date string) (*Holiday, error)

	// ListBetween returns holidays with startDate <= date <= endDate,
	// ascending by date.
	ListBetween(ctx context.Context, startDate, endDate string) ([]Holiday, error)

	Delete(ctx context.Context, date string) error
}
