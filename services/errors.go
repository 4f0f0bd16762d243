package services

import "errors"

// The three failure classes surfaced to callers. Everything a service
// returns wraps one of these so controllers can map them to status codes
// with errors.Is.
var (
	// ErrUnauthenticated: the operation requires a signed-in user.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrLookup: the external food catalog call failed or returned
	// something we could not parse.
	ErrLookup = errors.New("food catalog lookup failed")

	// ErrPersistence: a store read or write failed.
	ErrPersistence = errors.New("persistence failed")

	// ErrNotFound: the addressed record does not exist (or belongs to
	// someone else). A client error, not a store failure.
	ErrNotFound = errors.New("record not found")
)
