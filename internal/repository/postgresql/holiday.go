package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, reason)
		VALUES ($1, $2)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, h.Date, h.Reason).Scan(&h.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// Get implements holiday.HolidayRepository.
func (r *holidayRepository) Get(ctx context.Context, date string) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT date, reason, created_at FROM holidays WHERE date = $1`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, date).Scan(&h.Date, &h.Reason, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no holiday on this date
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}

	return &h, nil
}

// ListBetween implements holiday.HolidayRepository.
func (r *holidayRepository) ListBetween(ctx context.Context, startDate, endDate string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, reason, created_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.Date, &h.Reason, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, date string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
