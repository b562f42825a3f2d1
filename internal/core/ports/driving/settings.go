package driving

import "github.com/custodia-labs/docstyle/internal/core/domain"

// SettingsService reads and updates application settings.
type SettingsService interface {
	// Get returns the current settings with defaults filled in.
	Get() domain.Settings

	// Set validates and stores one setting by dotted key.
	Set(key, value string) error

	// Keys lists the supported setting keys.
	Keys() []string

	// Path returns the settings file, or "" when settings are not persisted.
	Path() string
}
