// Package storage persists the network book between sessions.
package storage

import (
	"fmt"
	"strings"

	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/model"
)

// Store loads and saves a whole book.
type Store interface {
	// Load returns the saved persons in order. A book that was never saved is empty.
	Load() ([]model.Person, error)
	// Save replaces the saved book with persons.
	Save(persons []model.Person) error
	// Path is where the book lives.
	Path() string
}

// Backend selects a Store implementation.
type Backend string

const (
	BackendYAML   Backend = "yaml"
	BackendSQLite Backend = "sqlite"
)

// Extension is the file extension used for books of this backend.
func (b Backend) Extension() string {
	if b == BackendSQLite {
		return ".db"
	}
	return ".yaml"
}

// ParseBackend accepts a backend name; empty means yaml.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yaml", "yml":
		return BackendYAML, nil
	case "sqlite", "sqlite3", "db":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q (expected yaml or sqlite)", name)
	}
}

// Open returns the store for backend at path.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendYAML, "":
		return NewYAMLStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// personRecord is the storage shape of a person: every field as plain text.
type personRecord struct {
	Name            string   `yaml:"name"`
	Phones          []string `yaml:"phones,omitempty"`
	Emails          []string `yaml:"emails,omitempty"`
	Links           []string `yaml:"links,omitempty"`
	Graduation      string   `yaml:"graduation,omitempty"`
	Courses         []string `yaml:"courses,omitempty"`
	Specialisations []string `yaml:"specialisations,omitempty"`
	Tags            []string `yaml:"tags,omitempty"`
	Priority        string   `yaml:"priority,omitempty"`
}

func toRecord(p model.Person) personRecord {
	rec := personRecord{
		Name:            p.Name.String(),
		Phones:          nilIfEmpty(p.Phones.Strings()),
		Emails:          nilIfEmpty(p.Emails.Strings()),
		Links:           nilIfEmpty(p.Links.Strings()),
		Courses:         nilIfEmpty(p.Courses.Strings()),
		Specialisations: nilIfEmpty(p.Specialisations.Strings()),
		Tags:            nilIfEmpty(p.Tags.Strings()),
	}
	if p.Graduation != nil {
		rec.Graduation = p.Graduation.String()
	}
	if p.Priority != nil {
		rec.Priority = p.Priority.String()
	}
	return rec
}

// toPerson revalidates a record through the model constructors.
func (rec personRecord) toPerson() (model.Person, error) {
	name, err := model.NewName(rec.Name)
	if err != nil {
		return model.Person{}, err
	}
	p := model.NewPerson(name)

	if p.Phones, err = listOf(rec.Phones, model.NewPhone); err != nil {
		return model.Person{}, err
	}
	if p.Emails, err = listOf(rec.Emails, model.NewEmail); err != nil {
		return model.Person{}, err
	}
	if p.Links, err = listOf(rec.Links, model.NewLink); err != nil {
		return model.Person{}, err
	}
	if p.Courses, err = listOf(rec.Courses, model.NewCourse); err != nil {
		return model.Person{}, err
	}
	if p.Specialisations, err = listOf(rec.Specialisations, model.NewSpecialisation); err != nil {
		return model.Person{}, err
	}
	if p.Tags, err = listOf(rec.Tags, model.NewTag); err != nil {
		return model.Person{}, err
	}
	if rec.Graduation != "" {
		g, err := model.NewGraduation(rec.Graduation)
		if err != nil {
			return model.Person{}, err
		}
		p.Graduation = &g
	}
	if rec.Priority != "" {
		pr, err := model.NewPriority(rec.Priority)
		if err != nil {
			return model.Person{}, err
		}
		p.Priority = &pr
	}
	return p, nil
}

func recordsToPersons(records []personRecord, source string) ([]model.Person, error) {
	persons := make([]model.Person, 0, len(records))
	for i, rec := range records {
		p, err := rec.toPerson()
		if err != nil {
			return nil, errs.Wrap(errs.KindStorage, err,
				fmt.Sprintf("%s: invalid person #%d (%s)", source, i+1, rec.Name))
		}
		persons = append(persons, p)
	}
	return persons, nil
}

func listOf[T model.Keyed](raws []string, parse func(string) (T, error)) (model.UniqueList[T], error) {
	values := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := parse(raw)
		if err != nil {
			return model.UniqueList[T]{}, err
		}
		values = append(values, v)
	}
	return model.NewUniqueListOf(values...)
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
