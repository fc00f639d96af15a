// Package config loads the TOML application configuration, seeding a
// commented default file on first run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	DefaultToolbarIconSize = 32
	DefaultPickerIconSize  = 24
)

// CustomNode declares an extra node type shown in the node picker, with an
// icon loaded from disk instead of the built-in set.
type CustomNode struct {
	Name  string `toml:"name"`
	Label string `toml:"label"`
	Icon  string `toml:"icon"`
}

// Config is the top-level TOML structure.
type Config struct {
	DaemonURL       string       `toml:"daemon_url"`
	LogLevel        string       `toml:"log_level"`
	ToolbarIconSize int          `toml:"toolbar_icon_size"`
	PickerIconSize  int          `toml:"picker_icon_size"`
	CustomNodes     []CustomNode `toml:"custom_node"`
}

const defaultConfigTOML = `# netlab-designer configuration
# Add [[custom_node]] blocks to extend the node picker.

daemon_url = "ws://127.0.0.1:50051/session"
log_level = "info"
toolbar_icon_size = 32
picker_icon_size = 24

# [[custom_node]]
# name = "firewall"
# label = "Firewall"
# icon = "/path/to/firewall.png"
`

// Dir returns the directory for netlab-designer config files, using
// XDG_CONFIG_HOME or the platform equivalent.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "netlab-designer"), nil
}

// Path returns the full path to the config.toml file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration at path. A missing file is seeded with the
// default configuration first, so a fresh install gets a commented template.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return Config{}, fmt.Errorf("create config dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); err != nil {
			return Config{}, fmt.Errorf("seed default config: %w", err)
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadDefault loads the configuration from the user config directory.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.DaemonURL == "" {
		c.DaemonURL = "ws://127.0.0.1:50051/session"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ToolbarIconSize <= 0 {
		c.ToolbarIconSize = DefaultToolbarIconSize
	}
	if c.PickerIconSize <= 0 {
		c.PickerIconSize = DefaultPickerIconSize
	}
}
