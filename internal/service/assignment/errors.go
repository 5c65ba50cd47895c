package assignment

import "errors"

var (
	// ErrFetchFailed is returned when the slot store cannot be queried
	ErrFetchFailed = errors.New("assignment.service: fetch failed")
)
