package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.StyleLoader = (*Loader)(nil)

var extensions = []string{".toml", ".yaml", ".yml"}

// Loader reads profiles from a directory.
type Loader struct {
	dir string
}

// NewLoader creates a profile loader.
// If dir is empty, defaults to ~/.docstyle/styles. The directory need not exist.
func NewLoader(dir string) (*Loader, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".docstyle", "styles")
	}
	return &Loader{dir: dir}, nil
}

// Dir returns the profile directory.
func (l *Loader) Dir() string {
	return l.dir
}

// Load returns the named profile overlaid on the defaults.
func (l *Loader) Load(name string) (domain.HouseStyle, error) {
	if name == "" || name == domain.DefaultStyleName {
		return domain.DefaultHouseStyle(), nil
	}

	path, err := l.resolve(name)
	if err != nil {
		return domain.HouseStyle{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.HouseStyle{}, fmt.Errorf("reading profile %s: %w", path, err)
	}

	hs, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return domain.HouseStyle{}, fmt.Errorf("profile %s: %w", path, err)
	}
	if hs.Name == domain.DefaultStyleName || hs.Name == "" {
		hs.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return hs, nil
}

// resolve maps a profile name or path to a file.
func (l *Loader) resolve(name string) (string, error) {
	if isPath(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%w: %s", domain.ErrUnknownProfile, name)
		}
		return name, nil
	}
	for _, ext := range extensions {
		path := filepath.Join(l.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnknownProfile, name)
}

func isPath(name string) bool {
	if strings.ContainsRune(name, filepath.Separator) || strings.Contains(name, "/") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// List returns the built-in profile followed by the profiles in the directory.
func (l *Loader) List() ([]string, error) {
	names := []string{domain.DefaultStyleName}
	entries, err := os.ReadDir(l.dir)
	if errors.Is(err, os.ErrNotExist) {
		return names, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	seen := map[string]bool{domain.DefaultStyleName: true}
	var found []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !isProfileExt(ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if !seen[name] {
			seen[name] = true
			found = append(found, name)
		}
	}
	sort.Strings(found)
	return append(names, found...), nil
}

func isProfileExt(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Decode overlays a TOML (".toml") or YAML (".yaml", ".yml") profile on the
// defaults and validates the result. Unknown keys are errors.
func Decode(data []byte, ext string) (domain.HouseStyle, error) {
	hs := domain.DefaultHouseStyle()
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&hs); err != nil {
			return domain.HouseStyle{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&hs); err != nil && !errors.Is(err, io.EOF) {
			return domain.HouseStyle{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	default:
		return domain.HouseStyle{}, fmt.Errorf("%w: unsupported profile format %q", domain.ErrInvalidInput, ext)
	}
	if err := hs.Validate(); err != nil {
		return domain.HouseStyle{}, err
	}
	return hs, nil
}

// Encode renders a profile as TOML or YAML.
func Encode(hs domain.HouseStyle, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		return toml.Marshal(hs)
	case "yaml", "yml":
		return yaml.Marshal(hs)
	default:
		return nil, fmt.Errorf("%w: unsupported profile format %q", domain.ErrInvalidInput, format)
	}
}

// Encode renders a profile as TOML or YAML.
func (l *Loader) Encode(hs domain.HouseStyle, format string) ([]byte, error) {
	return Encode(hs, format)
}
