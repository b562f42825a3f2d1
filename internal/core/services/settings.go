package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyCheckSuffix  = "check.suffix"
	KeyCheckWorkers = "check.workers"
	KeyCheckHistory = "check.history"
	KeyStyleProfile = "style.profile"
	KeyErrorColor   = "annotate.error_color"
	KeyWarnColor    = "annotate.warn_color"
)

const maxCheckWorkers = 64

var settingKeys = []string{
	KeyCheckSuffix, KeyCheckWorkers, KeyCheckHistory, KeyStyleProfile, KeyErrorColor, KeyWarnColor,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a settings service. configStore may be nil,
// in which case Get returns the defaults and Set fails.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the current settings. Unset or invalid values use defaults.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings
	}

	if v := s.configStore.GetString(KeyCheckSuffix); v != "" {
		settings.Check.Suffix = v
	}
	if v := s.configStore.GetInt(KeyCheckWorkers); v > 0 && v <= maxCheckWorkers {
		settings.Check.Workers = v
	}
	if _, ok := s.configStore.Get(KeyCheckHistory); ok {
		settings.Check.History = s.configStore.GetBool(KeyCheckHistory)
	}
	if v := s.configStore.GetString(KeyStyleProfile); v != "" {
		settings.Style.Profile = v
	}
	if v := s.configStore.GetString(KeyErrorColor); domain.IsHexColor(v) {
		settings.Annotate.ErrorColor = v
	}
	if v := s.configStore.GetString(KeyWarnColor); domain.IsHexColor(v) {
		settings.Annotate.WarnColor = v
	}
	return settings
}

// Set validates value for key and stores it with its native type.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("%w: no config store", domain.ErrInvalidInput)
	}
	typed, err := parseSetting(key, value)
	if err != nil {
		return err
	}
	return s.configStore.Set(key, typed)
}

// Keys lists the supported setting keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// Path returns the backing config file.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func parseSetting(key, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch key {
	case KeyCheckSuffix:
		if value == "" || strings.ContainsAny(value, `/\`) {
			return nil, fmt.Errorf("%w: %s must be a non-empty file name fragment", domain.ErrInvalidInput, key)
		}
		return value, nil
	case KeyCheckWorkers:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > maxCheckWorkers {
			return nil, fmt.Errorf("%w: %s must be between 1 and %d", domain.ErrInvalidInput, key, maxCheckWorkers)
		}
		return n, nil
	case KeyCheckHistory:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	case KeyStyleProfile:
		if value == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		return value, nil
	case KeyErrorColor, KeyWarnColor:
		value = strings.TrimPrefix(value, "#")
		if !domain.IsHexColor(value) {
			return nil, fmt.Errorf("%w: %s must be a RRGGBB hex colour", domain.ErrInvalidInput, key)
		}
		return strings.ToUpper(value), nil
	default:
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}
