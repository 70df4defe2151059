package models

import "errors"

// Business-rule failures shared by all services. Handlers map these to HTTP
// statuses; services never log and swallow them.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// DuplicateKeyError: username or email uniqueness violated. Field names the
// offending attribute so the UI can point at the right input.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return e.Field + " is already in use"
}

// ValidationError: input the core refuses outright (negative quantity,
// unknown movement type). Boundary validation beyond that is the caller's job.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
