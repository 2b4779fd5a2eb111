package settings

import "context"

// SettingsRepository stores the singleton portal settings row.
type SettingsRepository interface {
	// Get returns ErrSettingsNotFound when the row has never been written.
	Get(ctx context.Context) (PortalSettings, error)

	// Upsert writes the settings with merge semantics: nil request fields
	// are resolved by the caller before persisting.
	Upsert(ctx context.Context, s PortalSettings) error
}

// SettingsService defines business logic around the singleton settings.
type SettingsService interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	// Resolved returns the stored settings or defaults when unset; every
	// window computation goes through it.
	Resolved(ctx context.Context) (PortalSettings, error)
}
