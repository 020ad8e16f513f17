package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested record does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned on login failure. It deliberately
	// does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPermissionDenied is returned when the caller's role does not allow
	// the operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrPatientNotFound is returned when an incident write references a
	// patient that does not exist.
	ErrPatientNotFound = errors.New("patient does not exist")
	// ErrInvalidStatus is returned when an incident write carries an unknown
	// status value.
	ErrInvalidStatus = errors.New("invalid incident status")
)

// StorageError reports a persistence backend failure on a specific slot.
// It is the one recoverable error surfaced to the UI instead of silent loss.
type StorageError struct {
	Slot string
	Err  error
}

// NewStorageError wraps err as a StorageError for the given slot.
func NewStorageError(slot string, err error) *StorageError {
	return &StorageError{Slot: slot, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure on slot %s: %v", e.Slot, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
