package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// Ensure StyleService implements the interface.
var _ driving.StyleService = (*StyleService)(nil)

// StyleService resolves house-style profiles against the settings.
type StyleService struct {
	loader   driven.StyleLoader
	settings driving.SettingsService
}

// NewStyleService creates a style service. settings may be nil.
func NewStyleService(loader driven.StyleLoader, settings driving.SettingsService) *StyleService {
	return &StyleService{loader: loader, settings: settings}
}

// Load returns the named profile, or the configured one when name is empty.
func (s *StyleService) Load(name string) (domain.HouseStyle, error) {
	if name == "" && s.settings != nil {
		name = s.settings.Get().Style.Profile
	}
	hs, err := s.loader.Load(name)
	if err != nil {
		return domain.HouseStyle{}, fmt.Errorf("loading style %q: %w", name, err)
	}
	return hs, nil
}

// List returns the available profile names.
func (s *StyleService) List() ([]string, error) {
	return s.loader.List()
}

// Export encodes a profile. JSON is for display only; the loader reads
// TOML and YAML.
func (s *StyleService) Export(style domain.HouseStyle, format string) ([]byte, error) {
	if strings.EqualFold(format, "json") {
		return json.MarshalIndent(style, "", "  ")
	}
	return s.loader.Encode(style, format)
}
