package storage

import "errors"

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrMissingParent is returned when a metrics update matched no
	// response row
	ErrMissingParent = errors.New("response row missing")

	// ErrTerminalState is returned when an update would regress a
	// terminal audit status
	ErrTerminalState = errors.New("audit already in a terminal state")
)
