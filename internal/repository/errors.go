package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateOpenEntry is returned when an insert trips the store's
	// one-open-entry-per-user index, e.g. a clock-in raced from another
	// session.
	ErrDuplicateOpenEntry = errors.New("an open time entry already exists")
)
