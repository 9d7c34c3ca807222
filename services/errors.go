package services

import (
	"errors"
	"fmt"

	"matka/panna"
)

// Business failures the transport layer maps onto its own status vocabulary.
var (
	// ErrNotFound covers records that do not exist or are not owned by the
	// requester.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyUndone rejects a repeated undo; distinct from ErrNotFound so
	// callers can render "nothing to do" rather than "bad id".
	ErrAlreadyUndone = errors.New("bulk action already undone")
)

// ValidationError reports a request rejected before any write happened.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a store failure that rolled back the in-flight
// batch.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "persistence failure: " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a rejected request, either from the
// scheme engine or from this package.
func IsValidation(err error) bool {
	var serr *ValidationError
	var perr *panna.ValidationError
	return errors.As(err, &serr) || errors.As(err, &perr)
}
