// Package config loads and saves the panel's settings from
// ~/.config/treetop/config.toml.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	configDirName  = ".config"
	appDirName     = "treetop"
	configFileName = "config.toml"
)

// Config holds the user-facing panel settings.
type Config struct {
	// ShowHidden controls whether dotfile entries are listed.
	ShowHidden bool `toml:"show_hidden"`
	// CompactIndent switches the tree to 2-space indentation.
	CompactIndent bool `toml:"compact_indent"`
	// NerdFonts enables Nerd Font file icons.
	NerdFonts bool `toml:"nerd_fonts"`
}

// Default returns the settings used on first run.
func Default() Config {
	return Config{
		ShowHidden: true,
		NerdFonts:  true,
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, appDirName, configFileName), nil
}

// Load reads the config file, falling back to defaults when it is missing
// or unreadable. A broken config never blocks startup.
func Load() Config {
	path, err := configPath()
	if err != nil {
		return Default()
	}
	return LoadFrom(path)
}

// LoadFrom reads a config from an explicit path.
func LoadFrom(path string) Config {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config back to the default location, creating the
// directory if needed.
func (c Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path.
func (c Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
