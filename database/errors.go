package database

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable is returned for writes when no store is configured.
	ErrUnavailable = errors.New("database not available")
)
