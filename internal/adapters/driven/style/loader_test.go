package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

const journalTOML = `
name = "journal-a4"
disabled_rules = ["page-count"]

[fonts]
body_sizes = [12, 14]

[page]
width_mm = 210
height_mm = 297
max_pages = 12
`

const journalYAML = `
fonts:
  families: [Arial]
paragraph:
  body_alignment: left
text:
  min_leading_spaces: 2
`

func writeProfile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Default(t *testing.T) {
	l, err := NewLoader(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", domain.DefaultStyleName} {
		hs, err := l.Load(name)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultHouseStyle(), hs)
	}
}

func TestLoad_TOMLOverlay(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "journal.toml", journalTOML)
	l, err := NewLoader(dir)
	require.NoError(t, err)

	hs, err := l.Load("journal")
	require.NoError(t, err)

	assert.Equal(t, "journal-a4", hs.Name)
	assert.Equal(t, []float64{12, 14}, hs.Fonts.BodySizes)
	assert.Equal(t, 210.0, hs.Page.WidthMM)
	assert.Equal(t, 12, hs.Page.MaxPages)
	assert.Equal(t, []string{"page-count"}, hs.DisabledRules)

	defaults := domain.DefaultHouseStyle()
	assert.Equal(t, defaults.Fonts.Families, hs.Fonts.Families, "unset keys keep defaults")
	assert.Equal(t, defaults.Page.MarginTopCM, hs.Page.MarginTopCM)
	assert.Equal(t, defaults.Structure, hs.Structure)
}

func TestLoad_YAMLByPath(t *testing.T) {
	path := writeProfile(t, t.TempDir(), "house.yaml", journalYAML)
	l, err := NewLoader(t.TempDir())
	require.NoError(t, err)

	hs, err := l.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "house", hs.Name, "named after the file")
	assert.Equal(t, []string{"Arial"}, hs.Fonts.Families)
	assert.Equal(t, domain.AlignmentLeft, hs.Paragraph.BodyAlignment)
	assert.Equal(t, 2, hs.Text.MinLeadingSpaces)
	assert.Equal(t, domain.DefaultHouseStyle().Fonts.BodySizes, hs.Fonts.BodySizes)
}

func TestLoad_Unknown(t *testing.T) {
	l, err := NewLoader(t.TempDir())
	require.NoError(t, err)

	_, err = l.Load("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)

	_, err = l.Load("/missing/profile.toml")
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "typo.toml", "[fonts]\nfamilys = [\"Arial\"]\n")
	writeProfile(t, dir, "empty-fonts.yml", "fonts:\n  families: []\n")
	writeProfile(t, dir, "bad-regex.toml", "[structure]\ncaption_pattern = \"([\"\n")
	l, err := NewLoader(dir)
	require.NoError(t, err)

	for _, name := range []string{"typo", "empty-fonts", "bad-regex"} {
		t.Run(name, func(t *testing.T) {
			_, err := l.Load(name)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoad_EmptyYAMLIsDefaults(t *testing.T) {
	path := writeProfile(t, t.TempDir(), "blank.yaml", "")
	l, err := NewLoader(t.TempDir())
	require.NoError(t, err)

	hs, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "blank", hs.Name)
	assert.Equal(t, domain.DefaultHouseStyle().Fonts, hs.Fonts)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "b.toml", "")
	writeProfile(t, dir, "a.yaml", "")
	writeProfile(t, dir, "a.yml", "")
	writeProfile(t, dir, "notes.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.toml"), 0700))

	l, err := NewLoader(dir)
	require.NoError(t, err)
	names, err := l.List()
	require.NoError(t, err)
	assert.Equal(t, []string{domain.DefaultStyleName, "a", "b"}, names)

	missing, err := NewLoader(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	names, err = missing.List()
	require.NoError(t, err)
	assert.Equal(t, []string{domain.DefaultStyleName}, names)
}

func TestEncodeDecodeTOML(t *testing.T) {
	hs := domain.DefaultHouseStyle()
	hs.Page.MaxPages = 7

	data, err := Encode(hs, "toml")
	require.NoError(t, err)
	got, err := Decode(data, ".toml")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Page.MaxPages)

	_, err = Encode(hs, "json")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
