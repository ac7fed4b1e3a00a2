package movies

import (
	"errors"
	"strings"
)

// NoticeText is the message shown to the user when a submit is rejected.
const NoticeText = "Fill out form"

var (
	// ErrIndexOutOfRange is returned when a row position does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownField is returned for a field name other than title, year or rating.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownAction is returned by Apply for an action it cannot dispatch.
	ErrUnknownAction = errors.New("unknown action")
	// ErrRecordNotFound is returned when the edit target is no longer in the store.
	ErrRecordNotFound = errors.New("record not found")
)

// ValidationError reports a draft that cannot be added or saved.
type ValidationError struct {
	Missing []Field // Fields left empty
	Invalid []Field // Fields with a value the active validator rejects
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Invalid) == 0 {
		return NoticeText
	}
	names := make([]string, len(e.Invalid))
	for i, f := range e.Invalid {
		names[i] = string(f)
	}
	return NoticeText + ": " + strings.Join(names, ", ") + " must be a number"
}

// Fields returns every field named by the error, missing ones first.
func (e *ValidationError) Fields() []Field {
	out := make([]Field, 0, len(e.Missing)+len(e.Invalid))
	out = append(out, e.Missing...)
	return append(out, e.Invalid...)
}

// IsValidationError checks if an error is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
