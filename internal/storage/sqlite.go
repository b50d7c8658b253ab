package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/logger"
	"github.com/networkbook/networkbook/internal/model"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS persons (
	position   INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	graduation TEXT NOT NULL DEFAULT '',
	priority   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS person_values (
	position INTEGER NOT NULL REFERENCES persons(position) ON DELETE CASCADE,
	field    TEXT NOT NULL,
	ord      INTEGER NOT NULL,
	value    TEXT NOT NULL,
	PRIMARY KEY (position, field, ord)
);
`

// SQLiteStore keeps the book in a SQLite database. Persons are stored by
// position and multi-valued fields in person_values, ordered by ord.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore returns a store for the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Path() string { return s.path }

// open opens the database, creating the schema when needed.
func (s *SQLiteStore) open() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create book directory: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := initialize(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func initialize(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("book database has schema version %d, newer than supported %d", version, schemaVersion)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() ([]model.Person, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		logger.Logger.Debug("no book database yet", "path", s.path)
		return nil, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, errs.Wrap(errs.KindStorage, err, "open book")
	}
	defer db.Close()

	records, err := loadRecords(db)
	if err != nil {
		return nil, errs.Wrap(errs.KindStorage, err, "read book")
	}
	persons, err := recordsToPersons(records, s.path)
	if err != nil {
		return nil, err
	}
	logger.Logger.Debug("book loaded", "path", s.path, "persons", len(persons))
	return persons, nil
}

func loadRecords(db *sql.DB) ([]personRecord, error) {
	rows, err := db.Query(`SELECT position, name, graduation, priority FROM persons ORDER BY position`)
	if err != nil {
		return nil, err
	}
	type row struct {
		position int
		rec      personRecord
	}
	persons, err := scanRows(rows, func(rows *sql.Rows) (row, error) {
		var r row
		err := rows.Scan(&r.position, &r.rec.Name, &r.rec.Graduation, &r.rec.Priority)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	byPosition := make(map[int]*personRecord, len(persons))
	records := make([]personRecord, len(persons))
	for i := range persons {
		records[i] = persons[i].rec
		byPosition[persons[i].position] = &records[i]
	}

	rows, err = db.Query(`SELECT position, field, value FROM person_values ORDER BY position, field, ord`)
	if err != nil {
		return nil, err
	}
	type value struct {
		position     int
		field, value string
	}
	values, err := scanRows(rows, func(rows *sql.Rows) (value, error) {
		var v value
		err := rows.Scan(&v.position, &v.field, &v.value)
		return v, err
	})
	if err != nil {
		return nil, err
	}

	for _, v := range values {
		rec, ok := byPosition[v.position]
		if !ok {
			return nil, fmt.Errorf("value for unknown person at position %d", v.position)
		}
		target := rec.collection(v.field)
		if target == nil {
			return nil, fmt.Errorf("unknown field %q at position %d", v.field, v.position)
		}
		*target = append(*target, v.value)
	}
	return records, nil
}

func (s *SQLiteStore) Save(persons []model.Person) error {
	db, err := s.open()
	if err != nil {
		return errs.Wrap(errs.KindStorage, err, "open book")
	}
	defer db.Close()

	if err := saveRecords(db, persons); err != nil {
		return errs.Wrap(errs.KindStorage, err, "save book")
	}
	logger.Logger.Debug("book saved", "path", s.path, "persons", len(persons))
	return nil
}

func saveRecords(db *sql.DB, persons []model.Person) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM person_values`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM persons`); err != nil {
		return err
	}

	personStmt, err := tx.Prepare(`INSERT INTO persons (position, name, graduation, priority) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer personStmt.Close()
	valueStmt, err := tx.Prepare(`INSERT INTO person_values (position, field, ord, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer valueStmt.Close()

	for pos, p := range persons {
		rec := toRecord(p)
		if _, err := personStmt.Exec(pos, rec.Name, rec.Graduation, rec.Priority); err != nil {
			return err
		}
		for _, field := range collectionFields {
			for ord, v := range *rec.collection(field) {
				if _, err := valueStmt.Exec(pos, field, ord, v); err != nil {
					return err
				}
			}
		}
	}
	return tx.Commit()
}

var collectionFields = []string{
	model.FieldPhone,
	model.FieldEmail,
	model.FieldLink,
	model.FieldCourse,
	model.FieldSpecialisation,
	model.FieldTag,
}

// collection returns the slice holding field's values, or nil for a field
// that is not multi-valued.
func (rec *personRecord) collection(field string) *[]string {
	switch field {
	case model.FieldPhone:
		return &rec.Phones
	case model.FieldEmail:
		return &rec.Emails
	case model.FieldLink:
		return &rec.Links
	case model.FieldCourse:
		return &rec.Courses
	case model.FieldSpecialisation:
		return &rec.Specialisations
	case model.FieldTag:
		return &rec.Tags
	default:
		return nil
	}
}

// scanRows scans all rows into a slice using the provided scanner.
func scanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
