package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// The analysis engines themselves never return this: malformed
	// LaTeX degrades to empty results. It is reserved for the
	// boundary layer (non-text input, missing file).
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreClosed indicates the term store has been closed.
	ErrStoreClosed = errors.New("term store closed")
)
