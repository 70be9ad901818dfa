// Package common defines shared sentinel errors and small helpers used across
// the gophtodo client layers. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Registration errors.
	ErrAlreadyExists = errors.New("already exists")
	ErrEmptyInput    = errors.New("empty input")

	// Identity errors.
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrUnauthorized = errors.New("invalid username or password")

	// Task lookup errors.
	ErrNotFound = errors.New("not found")
	// ErrTaskChanged is a NotFound: the selected task is no longer where it was.
	ErrTaskChanged = fmt.Errorf("%w: task changed since it was selected", ErrNotFound)

	// Input parsing errors.
	ErrInvalidFormat = errors.New("invalid format")

	// Persistence errors.
	ErrStorageFailure = errors.New("storage failure")
)

var recoverable = []error{
	ErrAlreadyExists,
	ErrEmptyInput,
	ErrNotLoggedIn,
	ErrUnauthorized,
	ErrNotFound,
	ErrTaskChanged,
	ErrInvalidFormat,
	ErrStorageFailure,
}

// IsRecoverable reports whether err belongs to the taxonomy of errors that end
// a command early without failing the process.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range recoverable {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
