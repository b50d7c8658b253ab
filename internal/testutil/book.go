// Package testutil provides reusable fixtures for network book tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestBook is a temporary directory holding book and config files.
type TestBook struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestBook creates a new test book builder.
// Call Build() to create the actual directory.
func NewTestBook(t *testing.T) *TestBook {
	t.Helper()
	return &TestBook{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file relative to the book directory.
func (b *TestBook) WithFile(path, content string) *TestBook {
	b.files[path] = content
	return b
}

// Build creates the directory and all configured files.
func (b *TestBook) Build() *TestBook {
	b.t.Helper()
	b.Path = b.t.TempDir()
	for path, content := range b.files {
		b.writeFile(path, content)
	}
	return b
}

// Join returns the absolute path of relPath inside the book directory.
func (b *TestBook) Join(relPath string) string {
	return filepath.Join(b.Path, relPath)
}

func (b *TestBook) writeFile(relPath, content string) {
	b.t.Helper()
	fullPath := b.Join(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		b.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		b.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the book directory.
func (b *TestBook) ReadFile(relPath string) string {
	b.t.Helper()
	content, err := os.ReadFile(b.Join(relPath))
	if err != nil {
		b.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the book directory.
func (b *TestBook) FileExists(relPath string) bool {
	_, err := os.Stat(b.Join(relPath))
	return err == nil
}

// SampleBookYAML returns a valid two-person YAML book.
func SampleBookYAML() string {
	return `persons:
  - name: Alice Pauline
    phones: ["94351253"]
    emails: [alice@example.com]
    links: [https://github.com/alice]
    graduation: AY2324-S2
    courses: [CS2103T, CS2101]
    specialisations: [Software Engineering]
    tags: [friends]
    priority: High
  - name: Benson Meier
    phones: ["98765432", "91234567"]
    emails: [johnd@example.com]
    tags: [owesMoney, friends]
`
}
