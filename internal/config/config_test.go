package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.ShowHidden)
	assert.True(t, cfg.NerdFonts)
	assert.False(t, cfg.CompactIndent)
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads saved values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(
			"show_hidden = false\ncompact_indent = true\n"), 0644))

		cfg := LoadFrom(path)
		assert.False(t, cfg.ShowHidden)
		assert.True(t, cfg.CompactIndent)
		// Unset keys keep their defaults.
		assert.True(t, cfg.NerdFonts)
	})

	t.Run("broken file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

		assert.Equal(t, Default(), LoadFrom(path))
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Config{ShowHidden: false, CompactIndent: true, NerdFonts: false}
	require.NoError(t, cfg.SaveTo(path))

	assert.Equal(t, cfg, LoadFrom(path))
}
