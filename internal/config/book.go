package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/networkbook/networkbook/internal/slugs"
	"github.com/networkbook/networkbook/internal/storage"
)

// Environment variables that override the config file.
const (
	EnvConfig   = "NB_CONFIG"
	EnvBook     = "NB_BOOK"
	EnvBookPath = "NB_BOOK_PATH"
	EnvStorage  = "NB_STORAGE"
	EnvLogLevel = "NB_LOG_LEVEL"
)

// DefaultBookName is used when neither flags, env nor config name a book.
const DefaultBookName = "personal"

// LoadDotEnv loads a .env file from the working directory if present.
// Variables already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ApplyEnv overlays NB_* environment variables onto c.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvBook); v != "" {
		c.DefaultBook = v
	}
	if v := os.Getenv(EnvStorage); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Book is a resolved book location.
type Book struct {
	Name    string
	Path    string
	Backend storage.Backend
}

// ResolveBook picks the book to open.
// Name: argument > default_book > "personal".
// Path: explicitPath > NB_BOOK_PATH > [books] entry > data_dir/<slug>.<ext>.
// The backend follows the file extension when it is .db or .sqlite, and the
// configured backend otherwise.
func (c *Config) ResolveBook(name, explicitPath string) (Book, error) {
	backend, err := storage.ParseBackend(c.Storage.Backend)
	if err != nil {
		return Book{}, err
	}

	if name == "" {
		name = c.DefaultBook
	}
	if name == "" {
		name = DefaultBookName
	}

	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvBookPath)
	}
	if path == "" {
		path = c.Books[name]
	}
	if path == "" {
		dir, err := c.dataDir()
		if err != nil {
			return Book{}, err
		}
		path = filepath.Join(dir, slugs.BookSlug(name)+backend.Extension())
	}

	path, err = expandHome(path)
	if err != nil {
		return Book{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		backend = storage.BackendSQLite
	case ".yaml", ".yml":
		backend = storage.BackendYAML
	}
	return Book{Name: name, Path: path, Backend: backend}, nil
}

// ListBooks returns the configured books, sorted by name.
func (c *Config) ListBooks() []Book {
	names := make([]string, 0, len(c.Books))
	for name := range c.Books {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Book, 0, len(names))
	for _, name := range names {
		if b, err := c.ResolveBook(name, c.Books[name]); err == nil {
			out = append(out, b)
		}
	}
	return out
}

func (c *Config) dataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "networkbook"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine data directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "networkbook"), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
