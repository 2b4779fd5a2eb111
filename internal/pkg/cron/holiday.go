package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
)

type HolidayJobs struct {
	holidaySvc holiday.HolidayService
}

func NewHolidayJobs(holidaySvc holiday.HolidayService) *HolidayJobs {
	return &HolidayJobs{holidaySvc: holidaySvc}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("seed_current_year_sundays", 24*time.Hour, j.SeedCurrentYearSundays)
}

// SeedCurrentYearSundays keeps the current year's Sundays marked as holidays.
// The seed is idempotent, so the daily re-run only fills gaps such as the
// first run after a year rollover.
func (j *HolidayJobs) SeedCurrentYearSundays(ctx context.Context) error {
	year := time.Now().Year()

	result, err := j.holidaySvc.SeedSundays(ctx, year)
	if err != nil {
		return fmt.Errorf("failed to seed sundays for %d: %w", year, err)
	}

	if result.Created > 0 {
		slog.Info("Cron: seeded Sunday holidays", "year", year, "created", result.Created)
	}
	return nil
}
