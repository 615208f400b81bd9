// Package jobs holds the in-memory job collection and the derived state
// around it: favorites, the user profile and the filter engine.
package jobs

import "errors"

var (
	// ErrNotFound is returned when an operation references a job id
	// that is not in the collection.
	ErrNotFound = errors.New("job not found")

	// ErrDataUnavailable is returned when neither the store nor the
	// bootstrap source yields a job collection. The session degrades to
	// an empty collection; profile and favorites stay usable.
	ErrDataUnavailable = errors.New("job data unavailable")
)
