package driven

// ConfigStore reads and writes application settings by dotted key,
// for example "check.suffix".
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" when unset.
	GetString(key string) string

	// GetInt returns the value as an int, or 0 when unset or not numeric.
	GetInt(key string) int

	// GetBool returns the value as a bool, or false when unset.
	GetBool(key string) bool

	// Keys returns all set keys in sorted order.
	Keys() []string

	// Set stores a value and persists the file.
	Set(key string, value any) error

	// Load reads the file. A missing file is an empty config.
	Load() error

	// Save writes the file.
	Save() error

	// Path returns the backing file path.
	Path() string
}
