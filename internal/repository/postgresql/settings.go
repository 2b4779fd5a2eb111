package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/settings"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// The settings table holds exactly one row, keyed by a fixed id, mirroring
// the original settings/portal document.
const settingsRowID = "portal"

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (settings.PortalSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT currency, logo_url, login_logo_url, salary_start_day, updated_at
		FROM portal_settings
		WHERE id = $1
	`

	var s settings.PortalSettings
	err := q.QueryRow(ctx, query, settingsRowID).Scan(
		&s.Currency, &s.LogoURL, &s.LoginLogoURL, &s.SalaryStartDay, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.PortalSettings{}, settings.ErrSettingsNotFound
		}
		return settings.PortalSettings{}, fmt.Errorf("failed to get portal settings: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, s settings.PortalSettings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO portal_settings (id, currency, logo_url, login_logo_url, salary_start_day, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE
		SET currency = EXCLUDED.currency,
			logo_url = EXCLUDED.logo_url,
			login_logo_url = EXCLUDED.login_logo_url,
			salary_start_day = EXCLUDED.salary_start_day,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, settingsRowID, s.Currency, s.LogoURL, s.LoginLogoURL, s.SalaryStartDay); err != nil {
		return fmt.Errorf("failed to upsert portal settings: %w", err)
	}

	return nil
}
