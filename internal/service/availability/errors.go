package availability

import "errors"

var (
	// ErrFetchFailed is returned when the slot store cannot be queried.
	// Callers are expected to surface a retry-capable state; no partial
	// results are fabricated.
	ErrFetchFailed = errors.New("availability.service: fetch failed")

	// ErrInvalidMonth is returned for an out-of-range month argument
	ErrInvalidMonth = errors.New("availability.service: invalid month")
)
