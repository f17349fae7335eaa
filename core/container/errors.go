package container

import "errors"

var (
	// ErrNotFound is returned when no service is registered under an identifier.
	ErrNotFound = errors.New("service not found")

	// ErrResolution is returned when a registered service cannot be built.
	ErrResolution = errors.New("service resolution failed")

	// ErrDuplicate is returned when an identifier is registered twice.
	ErrDuplicate = errors.New("service already registered")

	// ErrNilFactory is returned when a nil factory is registered.
	ErrNilFactory = errors.New("nil service factory")
)
