package store

import "errors"

var (
	// ErrNotFound is returned by updates and typed lookups targeting an id
	// that does not exist in the store.
	ErrNotFound = errors.New("record not found")

	// ErrReadOnlyBackend is returned when a write reaches a backend without
	// write capability. The manager swallows it like any other durable
	// failure; it only surfaces from direct backend use.
	ErrReadOnlyBackend = errors.New("durable backend is read-only")
)
