// Package shell runs network book commands interactively, either as a
// bubbletea TUI or as a plain line loop.
package shell

import (
	"os"
	"time"

	"github.com/networkbook/networkbook/internal/audit"
	"github.com/networkbook/networkbook/internal/commands"
	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/logger"
	"github.com/networkbook/networkbook/internal/model"
	"github.com/networkbook/networkbook/internal/parser"
	"github.com/networkbook/networkbook/internal/storage"
)

// Result is the outcome of one line of input.
type Result struct {
	commands.Result

	// Word is the command word that ran.
	Word string
	// SaveErr is set when the command succeeded but the book could not be
	// saved. The in-memory change is kept.
	SaveErr error
}

// Session ties the in-memory book to its store.
type Session struct {
	model model.Model
	store storage.Store
	audit *audit.History

	// savedAt is the book file's modification time after our last load or
	// save, so our own writes are not mistaken for outside changes.
	savedAt time.Time
}

// NewSession wraps an already loaded model. store may be nil, in which case
// nothing is persisted.
func NewSession(m model.Model, store storage.Store) *Session {
	return &Session{model: m, store: store}
}

// Open loads the book from store into a new model.
func Open(store storage.Store) (*Session, error) {
	persons, err := store.Load()
	if err != nil {
		return nil, err
	}
	m, err := model.NewManager(persons)
	if err != nil {
		return nil, errs.Wrap(errs.KindStorage, err, store.Path())
	}
	logger.Logger.Debug("opened book", "path", store.Path(), "persons", len(persons))
	s := NewSession(m, store)
	s.savedAt = s.modTime()
	return s, nil
}

// SetAudit records mutating commands to l from now on.
func (s *Session) SetAudit(l *audit.History) { s.audit = l }

// Model returns the session's model.
func (s *Session) Model() model.Model { return s.model }

// Store returns the session's store, or nil.
func (s *Session) Store() storage.Store { return s.store }

// Run parses and executes one line of input, saving the book afterwards if
// the command can change it. A returned error means the command was rejected
// and the model is unchanged.
func (s *Session) Run(input string) (Result, error) {
	cmd, err := parser.ParseCommand(input)
	if err != nil {
		return Result{}, err
	}

	res, err := cmd.Execute(s.model)
	if err != nil {
		logger.Logger.Debug("command failed", "word", cmd.Word(), "err", err)
		return Result{}, err
	}

	out := Result{Result: res, Word: cmd.Word()}
	if commands.IsMutating(cmd.Word()) {
		out.SaveErr = s.Save()
		s.record(cmd.Word(), input, out.SaveErr == nil)
	}
	return out, nil
}

func (s *Session) record(word, input string, saved bool) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(word, input, len(s.model.Persons()), saved); err != nil {
		logger.Logger.Warn("could not write audit log", "path", s.audit.Path(), "err", err)
	}
}

// Save writes every person to the store.
func (s *Session) Save() error {
	if s.store == nil {
		return nil
	}
	persons := s.model.Persons()
	if err := s.store.Save(persons); err != nil {
		logger.Logger.Warn("could not save book", "path", s.store.Path(), "err", err)
		return err
	}
	s.savedAt = s.modTime()
	logger.Logger.Info("saved book", "path", s.store.Path(), "persons", len(persons))
	return nil
}

// ReloadIfChanged reloads the book when its file was modified since this
// session last loaded or saved it. The current find filter and sort order
// are kept.
func (s *Session) ReloadIfChanged() (bool, error) {
	if s.store == nil {
		return false, nil
	}
	mod := s.modTime()
	if mod.IsZero() || mod.Equal(s.savedAt) {
		return false, nil
	}

	persons, err := s.store.Load()
	if err != nil {
		return false, err
	}
	if err := s.model.SetPersons(persons); err != nil {
		return false, errs.Wrap(errs.KindStorage, err, s.store.Path())
	}
	s.savedAt = mod
	logger.Logger.Info("reloaded book", "path", s.store.Path(), "persons", len(persons))
	return true, nil
}

func (s *Session) modTime() time.Time {
	if s.store == nil {
		return time.Time{}
	}
	info, err := os.Stat(s.store.Path())
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// ShowsList reports whether word's output includes the displayed list. Other
// commands print only their feedback, which already names the person.
func ShowsList(word string) bool {
	switch word {
	case "list", "find", "sort":
		return true
	}
	return false
}
