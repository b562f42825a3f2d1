package driven

import "github.com/custodia-labs/docstyle/internal/core/domain"

// StyleLoader resolves house-style profiles.
type StyleLoader interface {
	// Load returns the named profile overlaid on the defaults.
	// name may also be a path to a .toml, .yaml or .yml file.
	// Unknown names fail with domain.ErrUnknownProfile.
	Load(name string) (domain.HouseStyle, error)

	// List returns the names of the available profiles, built-in first.
	List() ([]string, error)

	// Encode writes a profile in a file format Load accepts: "toml" or "yaml".
	Encode(style domain.HouseStyle, format string) ([]byte, error)
}
