package repositories

import "errors"

var (
	// ErrNotFound reports that no row exists for the requested identifier.
	ErrNotFound = errors.New("record not found")

	// ErrAmbiguous reports that a lookup expected to match at most one row
	// matched several, i.e. a uniqueness invariant was violated in the store.
	ErrAmbiguous = errors.New("multiple records match a unique key")
)
