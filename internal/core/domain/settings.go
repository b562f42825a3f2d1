package domain

import "strconv"

// Settings are the application preferences read from the config file.
type Settings struct {
	Check    CheckSettings    `json:"check"`
	Style    StyleSettings    `json:"style"`
	Annotate AnnotateSettings `json:"annotate"`
}

// CheckSettings control the check pipeline.
type CheckSettings struct {
	// Suffix is inserted before the extension of annotated copies.
	Suffix string `json:"suffix"`

	// Workers bounds how many files are checked at once.
	Workers int `json:"workers"`

	// History records runs in the history store.
	History bool `json:"history"`
}

// StyleSettings select the house style.
type StyleSettings struct {
	// Profile is a profile name or a path to a profile file.
	Profile string `json:"profile"`
}

// AnnotateSettings control how annotated copies are marked.
type AnnotateSettings struct {
	// ErrorColor and WarnColor are RRGGBB hex colours.
	ErrorColor string `json:"error_color"`
	WarnColor  string `json:"warn_color"`
}

// Default settings values.
const (
	DefaultSuffix     = "_annotated"
	DefaultWorkers    = 4
	DefaultErrorColor = "FF0000"
	DefaultWarnColor  = "C55A11"
)

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Check: CheckSettings{
			Suffix:  DefaultSuffix,
			Workers: DefaultWorkers,
			History: true,
		},
		Style: StyleSettings{
			Profile: DefaultStyleName,
		},
		Annotate: AnnotateSettings{
			ErrorColor: DefaultErrorColor,
			WarnColor:  DefaultWarnColor,
		},
	}
}

// IsHexColor reports whether s is a six-digit hex colour without '#'.
func IsHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Lookup returns the value of a dotted setting key as text.
func (s Settings) Lookup(key string) (string, bool) {
	switch key {
	case "check.suffix":
		return s.Check.Suffix, true
	case "check.workers":
		return strconv.Itoa(s.Check.Workers), true
	case "check.history":
		return strconv.FormatBool(s.Check.History), true
	case "style.profile":
		return s.Style.Profile, true
	case "annotate.error_color":
		return s.Annotate.ErrorColor, true
	case "annotate.warn_color":
		return s.Annotate.WarnColor, true
	}
	return "", false
}
