package holiday

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
	"github.com/attendly/attendance-backend-go/internal/domain/settings"
	"github.com/attendly/attendance-backend-go/internal/pkg/salarymonth"
	"golang.org/x/sync/errgroup"
)

// seedConcurrency bounds the parallel existence checks during the Sunday
// seed. A year has at most 53 Sundays, so the bound mostly protects the
// connection pool.
const seedConcurrency = 8

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
	settingsSvc settings.SettingsService
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, settingsSvc settings.SettingsService) *HolidayServiceImpl {
	return &HolidayServiceImpl{
		holidayRepo: holidayRepo,
		settingsSvc: settingsSvc,
	}
}

// Add implements holiday.HolidayService.
func (s *HolidayServiceImpl) Add(ctx context.Context, req holiday.AddHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h := holiday.Holiday{Date: req.Date}
	if req.Reason != "" {
		reason := req.Reason
		h.Reason = &reason
	}

	created, err := s.holidayRepo.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return mapHolidayToResponse(created), nil
}

// Get implements holiday.HolidayService.
func (s *HolidayServiceImpl) Get(ctx context.Context, date string) (holiday.HolidayResponse, error) {
	h, err := s.holidayRepo.Get(ctx, date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	if h == nil {
		return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
	}
	return mapHolidayToResponse(*h), nil
}

// ListForMonth implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListForMonth(ctx context.Context, salaryMonthKey string) ([]holiday.HolidayResponse, error) {
	cfg, err := s.settingsSvc.Resolved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings: %w", err)
	}

	window, err := salarymonth.FromKey(salaryMonthKey, cfg.StartDay())
	if err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.ListBetween(ctx,
		window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses, nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, date string) error {
	return s.holidayRepo.Delete(ctx, date)
}

// SeedSundays implements holiday.HolidayService. Each Sunday is checked and
// created independently so a re-run only fills the gaps.
func (s *HolidayServiceImpl) SeedSundays(ctx context.Context, year int) (holiday.SeedSundaysResponse, error) {
	sundays := salarymonth.SundaysInYear(year)

	var created, skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)

	for _, date := range sundays {
		date := date
		g.Go(func() error {
			existing, err := s.holidayRepo.Get(gctx, date)
			if err != nil {
				return fmt.Errorf("failed to check holiday %s: %w", date, err)
			}
			if existing != nil {
				skipped.Add(1)
				return nil
			}

			reason := "Sunday"
			_, err = s.holidayRepo.Create(gctx, holiday.Holiday{Date: date, Reason: &reason})
			if err != nil {
				// Another seeder can win the insert between the check and the
				// create; that still counts as already seeded.
				if errors.Is(err, holiday.ErrHolidayExists) {
					skipped.Add(1)
					return nil
				}
				return fmt.Errorf("failed to create holiday %s: %w", date, err)
			}
			created.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return holiday.SeedSundaysResponse{}, err
	}

	return holiday.SeedSundaysResponse{
		Year:    year,
		Sundays: len(sundays),
		Created: int(created.Load()),
		Skipped: int(skipped.Load()),
	}, nil
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		Date:   h.Date,
		Reason: h.Reason,
	}
}
