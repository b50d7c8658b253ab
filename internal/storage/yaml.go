package storage

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/networkbook/networkbook/internal/atomicfile"
	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/logger"
	"github.com/networkbook/networkbook/internal/model"
)

// bookFile is the YAML document layout.
type bookFile struct {
	Persons []personRecord `yaml:"persons"`
}

// YAMLStore keeps the book in a single YAML file.
type YAMLStore struct {
	path string
}

// NewYAMLStore returns a store for the YAML file at path.
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

func (s *YAMLStore) Path() string { return s.path }

func (s *YAMLStore) Load() ([]model.Person, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Logger.Debug("no book file yet", "path", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.KindStorage, err, "read book")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc bookFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.Wrap(errs.KindStorage, err, "parse "+s.path)
	}
	persons, err := recordsToPersons(doc.Persons, s.path)
	if err != nil {
		return nil, err
	}
	logger.Logger.Debug("book loaded", "path", s.path, "persons", len(persons))
	return persons, nil
}

func (s *YAMLStore) Save(persons []model.Person) error {
	doc := bookFile{Persons: make([]personRecord, 0, len(persons))}
	for _, p := range persons {
		doc.Persons = append(doc.Persons, toRecord(p))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errs.Wrap(errs.KindStorage, err, "encode book")
	}
	if err := enc.Close(); err != nil {
		return errs.Wrap(errs.KindStorage, err, "encode book")
	}

	if err := atomicfile.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return errs.Wrap(errs.KindStorage, err, "save book")
	}
	logger.Logger.Debug("book saved", "path", s.path, "persons", len(persons))
	return nil
}
