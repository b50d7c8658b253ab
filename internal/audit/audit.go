// Package audit keeps the history of commands that changed a book, as JSON
// lines in a hidden file next to the book.
package audit

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Entry is one recorded command.
type Entry struct {
	Timestamp time.Time `json:"ts"`
	Operation string    `json:"op"`    // command word: create, add, edit, delete, clear
	Input     string    `json:"input"` // the command text as typed
	Persons   int       `json:"persons"`
	Saved     bool      `json:"saved"`
}

// History appends to and reads one book's command history. A disabled
// History records nothing and reads empty.
type History struct {
	path    string
	enabled bool
	mu      sync.Mutex
}

// PathFor returns the history file kept next to a book file.
// "work.db" logs to ".work.db.audit.log" in the same directory.
func PathFor(bookPath string) string {
	dir, base := filepath.Split(bookPath)
	return filepath.Join(dir, "."+base+".audit.log")
}

// New returns the history of the book at bookPath.
func New(bookPath string, enabled bool) *History {
	h := &History{enabled: enabled}
	if enabled {
		h.path = PathFor(bookPath)
	}
	return h
}

// Path returns where entries are written, or "" when disabled.
func (h *History) Path() string { return h.path }

func (h *History) Enabled() bool { return h.enabled }

// Record appends a command that changed the book.
func (h *History) Record(word, input string, persons int, saved bool) error {
	return h.Append(Entry{
		Operation: word,
		Input:     strings.TrimSpace(input),
		Persons:   persons,
		Saved:     saved,
	})
}

// Append writes e as one line. A zero timestamp is set to now.
func (h *History) Append(e Entry) error {
	if !h.enabled {
		return nil
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	// Encode terminates the line itself
	if err := json.NewEncoder(f).Encode(e); err != nil {
		f.Close()
		return fmt.Errorf("write history: %w", err)
	}
	return f.Close()
}

// Entries returns every entry, oldest first.
func (h *History) Entries() ([]Entry, error) {
	return h.entries(func(Entry) bool { return true })
}

// Since returns the entries recorded at or after t.
func (h *History) Since(t time.Time) ([]Entry, error) {
	return h.entries(func(e Entry) bool { return !e.Timestamp.Before(t) })
}

func (h *History) entries(keep func(Entry) bool) ([]Entry, error) {
	if !h.enabled {
		return nil, nil
	}
	f, err := os.Open(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	defer f.Close()

	var out []Entry
	err = decodeLines(f, func(e Entry) {
		if keep(e) {
			out = append(out, e)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return out, nil
}

// decodeLines calls fn for every line of r that decodes as an Entry. Lines
// left half-written by an interrupted append are skipped.
func decodeLines(r io.Reader, fn func(Entry)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if json.Unmarshal(line, &e) == nil {
			fn(e)
		}
	}
	return scanner.Err()
}
