package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Resolved implements settings.SettingsService.
func (s *SettingsServiceImpl) Resolved(ctx context.Context) (settings.PortalSettings, error) {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Defaults(), nil
		}
		return settings.PortalSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return stored, nil
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	resolved, err := s.Resolved(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return mapSettingsToResponse(resolved), nil
}

// Update implements settings.SettingsService. Unset request fields keep their
// stored (or default) values.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	current, err := s.Resolved(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	if req.Currency != nil {
		current.Currency = *req.Currency
	}
	if req.LogoURL != nil {
		current.LogoURL = req.LogoURL
	}
	if req.LoginLogoURL != nil {
		current.LoginLogoURL = req.LoginLogoURL
	}
	if req.SalaryStartDay != nil {
		current.SalaryStartDay = *req.SalaryStartDay
	}
	current.UpdatedAt = time.Now()

	if err := s.settingsRepo.Upsert(ctx, current); err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to upsert settings: %w", err)
	}

	return mapSettingsToResponse(current), nil
}

func mapSettingsToResponse(s settings.PortalSettings) settings.SettingsResponse {
	return settings.SettingsResponse{
		Currency:       s.Currency,
		CurrencySymbol: s.CurrencySymbol(),
		LogoURL:        s.LogoURL,
		LoginLogoURL:   s.LoginLogoURL,
		SalaryStartDay: s.StartDay(),
	}
}
