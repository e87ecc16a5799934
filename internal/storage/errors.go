package storage

import (
	"errors"
	"fmt"
)

// Persistence failure codes
const (
	CodeRemoteWriteFailed = "remote_write_failed"
	CodeSerialization     = "serialization_error"
)

// PersistenceError is the terminal failure of a trip submission
type PersistenceError struct {
	Code string
	Err  error
}

func (e *PersistenceError) Error() string {
	switch e.Code {
	case CodeRemoteWriteFailed:
		return fmt.Sprintf("remote write failed: %v", e.Err)
	case CodeSerialization:
		return fmt.Sprintf("serialize trip: %v", e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ErrTripNotFound is returned for unknown trips, trips owned by someone else
// and guests with nothing stored
var ErrTripNotFound = errors.New("trip not found")

// ErrEmailTaken is returned when registering an email that already exists
var ErrEmailTaken = errors.New("email already registered")

// ErrUserNotFound is returned when no user matches the lookup
var ErrUserNotFound = errors.New("user not found")
