package create_booking

import (
	"fmt"
	"time"

	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// validateRequest checks required fields and formats, returning the parsed
// date and time
func validateRequest(req *Request, now time.Time) (types.DateString, types.TimeString, error) {
	if req.Treatment == "" {
		return "", "", fmt.Errorf("%w: treatment is required", ErrInvalidInput)
	}
	if req.Mode == "" {
		return "", "", fmt.Errorf("%w: mode is required", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return "", "", fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if req.CustomerEmail == "" {
		return "", "", fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}

	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if date.IsBefore(types.NewDateString(now)) {
		return "", "", fmt.Errorf("%w: date %s is in the past", ErrInvalidInput, date)
	}

	return date, startTime, nil
}
