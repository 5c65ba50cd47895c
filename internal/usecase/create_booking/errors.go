package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed or incomplete request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownService is returned when no catalog entry exists for the
	// requested treatment and delivery mode
	ErrUnknownService = errors.New("unknown service")

	// ErrNoStaffAvailable is returned when no staff member carries the
	// requested time anymore (typically lost to a concurrent booking)
	ErrNoStaffAvailable = errors.New("no staff available for the requested time")

	// ErrSlotTaken is returned when the scheduling provider rejects the
	// appointment because the slot was booked concurrently
	ErrSlotTaken = errors.New("slot no longer available")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
