package calendarprovider

import "errors"

var (
	// ErrSlotTaken is returned when the requested time was booked concurrently
	ErrSlotTaken = errors.New("calendarprovider: slot no longer available")

	// ErrCalendarNotFound is returned when the calendar id is unknown upstream
	ErrCalendarNotFound = errors.New("calendarprovider: calendar not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("calendarprovider client: internal error")

	// ErrInvalidResponse is returned when the provider answers with an unexpected payload
	ErrInvalidResponse = errors.New("calendarprovider client: invalid response")

	// ErrServiceDegraded is returned when a best-effort call was skipped because
	// the provider is unavailable
	ErrServiceDegraded = errors.New("calendarprovider unavailable: graceful degradation applied")
)
