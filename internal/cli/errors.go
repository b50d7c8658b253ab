package cli

import (
	"errors"

	"github.com/networkbook/networkbook/internal/errs"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Command errors, one per error kind
	ErrTokenizeFormat     = "TOKENIZE_FORMAT"
	ErrInvalidFieldFormat = "INVALID_FIELD_FORMAT"
	ErrDuplicateValue     = "DUPLICATE_VALUE"
	ErrNothingToEdit      = "NOTHING_TO_EDIT"
	ErrInvalidIndex       = "INVALID_INDEX"
	ErrDuplicatePerson    = "DUPLICATE_PERSON"
	ErrUnknownCommand     = "UNKNOWN_COMMAND"
	ErrInvalidCommand     = "INVALID_COMMAND_FORMAT"
	ErrPersonNotFound     = "PERSON_NOT_FOUND"
	ErrStorage            = "STORAGE_ERROR"
	ErrConfigInvalid      = "CONFIG_INVALID"
	ErrConfirmationNeeded = "CONFIRMATION_REQUIRED"
	ErrInternal           = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnNotSaved = "NOT_SAVED"
)

// errSilent marks a failure that was already reported (as JSON) and only
// needs a non-zero exit status.
var errSilent = errors.New("silent")

var kindCodes = map[errs.Kind]string{
	errs.KindTokenizeFormat:       ErrTokenizeFormat,
	errs.KindInvalidFieldFormat:   ErrInvalidFieldFormat,
	errs.KindDuplicateValue:       ErrDuplicateValue,
	errs.KindNothingToEdit:        ErrNothingToEdit,
	errs.KindInvalidIndex:         ErrInvalidIndex,
	errs.KindDuplicatePerson:      ErrDuplicatePerson,
	errs.KindUnknownCommand:       ErrUnknownCommand,
	errs.KindInvalidCommandFormat: ErrInvalidCommand,
	errs.KindPersonNotFound:       ErrPersonNotFound,
	errs.KindStorage:              ErrStorage,
}

// codeFor maps an error to its stable code.
func codeFor(err error) string {
	if code, ok := kindCodes[errs.KindOf(err)]; ok {
		return code
	}
	return ErrInternal
}

// suggestionFor returns a hint for recovering from err, if there is one.
func suggestionFor(err error) string {
	switch errs.KindOf(err) {
	case errs.KindUnknownCommand:
		return "Run 'nb --help' to see available commands"
	case errs.KindInvalidCommandFormat, errs.KindTokenizeFormat:
		return "Run 'nb help <command>' for the command's grammar"
	case errs.KindInvalidIndex:
		return "Run 'nb list' to see the current numbering"
	case errs.KindStorage:
		return "Check the book file, or open another with --book-path"
	}
	return ""
}

func fieldOf(err error) string {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
