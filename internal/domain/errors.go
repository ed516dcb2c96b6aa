package domain

import "errors"

var (
	// ErrValidation marks bad or missing job/task/rate input. Wrapping errors
	// of this kind are raised before any store access.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a clock state precondition violation, typically a
	// stale assumption about the open entry (already clocked in, or the open
	// entry was closed from another session).
	ErrConflict = errors.New("clock state conflict")

	// ErrPersistence marks a failed read or write against the backing store.
	ErrPersistence = errors.New("persistence failure")
)
