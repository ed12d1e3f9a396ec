package measure

import "errors"

var (
	// ErrUnknownUnit indicates an absolute unit that is not present in the
	// unit→dimension table. This is a hard failure: dimensional type drives
	// every downstream computation, so classification must not guess.
	ErrUnknownUnit = errors.New("measure: unknown absolute unit")

	// ErrNotFound indicates a measurement id absent from the registry.
	ErrNotFound = errors.New("measure: measurement not found")

	// ErrDuplicateID indicates two definitions sharing the same id.
	ErrDuplicateID = errors.New("measure: duplicate measurement id")

	// ErrEmptyID indicates a definition with a blank id.
	ErrEmptyID = errors.New("measure: empty measurement id")
)
