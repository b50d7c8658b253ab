package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/networkbook/networkbook/internal/atomicfile"
)

// persistedConfig omits empty settings so saved files stay minimal.
type persistedConfig struct {
	DefaultBook *string           `toml:"default_book,omitempty"`
	DataDir     *string           `toml:"data_dir,omitempty"`
	Books       map[string]string `toml:"books,omitempty"`
	Storage     *persistedStorage `toml:"storage,omitempty"`
	UI          *persistedUI      `toml:"ui,omitempty"`
	Log         *persistedLog     `toml:"log,omitempty"`
	Audit       *persistedAudit   `toml:"audit,omitempty"`
}

type persistedAudit struct {
	Enabled bool `toml:"enabled"`
}

type persistedStorage struct {
	Backend *string `toml:"backend,omitempty"`
}

type persistedUI struct {
	Accent    *string `toml:"accent,omitempty"`
	CodeTheme *string `toml:"code_theme,omitempty"`
}

type persistedLog struct {
	Level *string `toml:"level,omitempty"`
	File  *string `toml:"file,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the config to path atomically.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		DefaultBook: nonEmptyPtr(cfg.DefaultBook),
		DataDir:     nonEmptyPtr(cfg.DataDir),
	}
	if len(cfg.Books) > 0 {
		out.Books = cfg.Books
	}
	if backend := nonEmptyPtr(cfg.Storage.Backend); backend != nil {
		out.Storage = &persistedStorage{Backend: backend}
	}
	accent, codeTheme := nonEmptyPtr(cfg.UI.Accent), nonEmptyPtr(cfg.UI.CodeTheme)
	if accent != nil || codeTheme != nil {
		out.UI = &persistedUI{Accent: accent, CodeTheme: codeTheme}
	}
	level, file := nonEmptyPtr(cfg.Log.Level), nonEmptyPtr(cfg.Log.File)
	if level != nil || file != nil {
		out.Log = &persistedLog{Level: level, File: file}
	}
	if cfg.Audit.Enabled {
		out.Audit = &persistedAudit{Enabled: true}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// AddBook registers a book path under name, making it the default when no
// default is set yet.
func (c *Config) AddBook(name, path string) {
	if c.Books == nil {
		c.Books = make(map[string]string)
	}
	c.Books[name] = path
	if c.DefaultBook == "" {
		c.DefaultBook = name
	}
}
