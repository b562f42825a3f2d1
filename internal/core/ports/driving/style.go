package driving

import "github.com/custodia-labs/docstyle/internal/core/domain"

// StyleService resolves and exports house-style profiles.
type StyleService interface {
	// Load returns a profile by name or path. An empty name selects the
	// configured profile.
	Load(name string) (domain.HouseStyle, error)

	// List returns the available profile names, built-in first.
	List() ([]string, error)

	// Export encodes a profile as "toml", "yaml" or "json".
	Export(style domain.HouseStyle, format string) ([]byte, error)
}
