// Package errs defines the error kinds shared by the parser, the merge logic
// and the command layer.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a network book error. Values are stable and double as the
// codes reported in JSON output.
type Kind string

const (
	// KindTokenizeFormat indicates malformed or repeated prefixes.
	KindTokenizeFormat Kind = "TOKENIZE_FORMAT"
	// KindInvalidFieldFormat indicates a single raw value failed validation.
	KindInvalidFieldFormat Kind = "INVALID_FIELD_FORMAT"
	// KindDuplicateValue indicates two values of one collection normalize equal.
	KindDuplicateValue Kind = "DUPLICATE_VALUE"
	// KindNothingToEdit indicates an edit carried no field at all.
	KindNothingToEdit Kind = "NOTHING_TO_EDIT"
	// KindInvalidIndex indicates a positional reference outside the displayed list.
	KindInvalidIndex Kind = "INVALID_INDEX"
	// KindDuplicatePerson indicates a person with the same name already exists.
	KindDuplicatePerson Kind = "DUPLICATE_PERSON"
	// KindPersonNotFound indicates the target person is not in the book.
	KindPersonNotFound Kind = "PERSON_NOT_FOUND"
	// KindUnknownCommand indicates the command word is not recognised.
	KindUnknownCommand Kind = "UNKNOWN_COMMAND"
	// KindInvalidCommandFormat indicates the arguments do not match the command usage.
	KindInvalidCommandFormat Kind = "INVALID_COMMAND_FORMAT"
	// KindStorage indicates the book could not be loaded or saved.
	KindStorage Kind = "STORAGE"
	// KindInternal indicates an unclassified failure.
	KindInternal Kind = "INTERNAL_ERROR"
)

// Error is the typed error carried through parsing and execution.
type Error struct {
	Kind    Kind
	Field   string // optional field name the error refers to
	Message string
	Err     error
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New returns an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf returns an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// ForField returns an invalid-format error for the named field.
func ForField(field, message string) *Error {
	return &Error{Kind: KindInvalidFieldFormat, Field: field, Message: message}
}

// KindOf reports the kind of err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err has the given kind anywhere in its chain, including
// causes wrapped by an outer *Error. KindOf only sees the outermost kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) || e == nil {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
