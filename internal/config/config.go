// Package config handles global network book configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global network book configuration.
type Config struct {
	// DefaultBook is the name of the book opened when none is given.
	DefaultBook string `toml:"default_book"`

	// Books maps book names to file paths.
	Books map[string]string `toml:"books"`

	// DataDir is where books without an explicit path are kept.
	DataDir string `toml:"data_dir"`

	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
	Audit   AuditConfig   `toml:"audit"`
}

// StorageConfig selects how books are persisted.
type StorageConfig struct {
	// Backend is "yaml" (default) or "sqlite".
	Backend string `toml:"backend"`
}

// UIConfig represents optional theming preferences.
type UIConfig struct {
	// Accent is an ANSI color code ("0" to "255") or a hex color ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme is the Glamour/Chroma theme used for code blocks in help.
	CodeTheme string `toml:"code_theme"`
}

// AuditConfig controls the per-book log of changing commands.
type AuditConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Load loads the configuration from the default location.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadOrEmpty(DefaultPath())
}

// LoadOrEmpty loads path, returning an empty config when it does not exist.
func LoadOrEmpty(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/networkbook/config.toml first,
// then falls back to the OS-specific config location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "networkbook", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "networkbook", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// ResolveConfigPath resolves the effective config path.
// Precedence: explicit flag > NB_CONFIG > DefaultPath.
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return DefaultPath()
}

const defaultConfig = `# Network Book configuration

# Book opened when --book is not given (must be a key in [books], or any
# name: unknown books are kept in data_dir)
# default_book = "personal"

# Named books and where they are stored
# [books]
# personal = "/path/to/personal.yaml"
# work = "/path/to/work.db"

# Directory for books without an explicit path
# (defaults to $XDG_DATA_HOME/networkbook)
# data_dir = "/path/to/books"

# [storage]
# backend = "yaml"   # or "sqlite"

# Optional accent color: ANSI code (0-255) or hex (#RRGGBB)
# [ui]
# accent = "39"
# code_theme = "monokai"

# [log]
# level = "info"
# file = ""

# Keep a log of every command that changed a book (see 'nb history')
# [audit]
# enabled = true
`

// CreateDefault writes a commented config template to path unless a file is
// already there. It returns whether a file was created.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
