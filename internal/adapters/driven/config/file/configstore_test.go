package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "docstyle")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("check.suffix", "_checked"))
	require.NoError(t, store.Set("check.workers", 8))
	require.NoError(t, store.Set("check.history", true))

	assert.Equal(t, "_checked", store.GetString("check.suffix"))
	assert.Equal(t, 8, store.GetInt("check.workers"))
	assert.True(t, store.GetBool("check.history"))

	assert.Equal(t, "", store.GetString("check.workers"), "wrong type reads as zero")
	assert.Equal(t, 0, store.GetInt("check.suffix"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_PersistsAsTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("check.workers", 2))
	require.NoError(t, store.Set("annotate.error_color", "AA0000"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[check]")
	assert.Contains(t, string(data), "[annotate]")

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.GetInt("check.workers"))
	assert.Equal(t, "AA0000", reloaded.GetString("annotate.error_color"))
	assert.Equal(t, []string{"annotate.error_color", "check.workers"}, reloaded.Keys())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("style.profile", "journal"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_InvalidKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("", "x"))
	assert.Error(t, store.Set("check.", "x"))
}

func TestConfigStore_LoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestFlattenAndNest(t *testing.T) {
	nested := map[string]any{
		"check": map[string]any{"suffix": "_a", "workers": int64(3)},
		"top":   "v",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"check.suffix": "_a", "check.workers": int64(3), "top": "v"}, flat)
	assert.Equal(t, nested, nestMap(flat))
}

func TestNestMap_ValueWinsOverTable(t *testing.T) {
	got := nestMap(map[string]any{"a": 1, "a.b": 2})
	assert.Equal(t, map[string]any{"a": 1}, got)
}
