package get_day_slots

import (
	"context"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

type AvailabilityService interface {
	MergedTimesForDay(ctx context.Context, key domain.ServiceKey, date types.DateString) (*domain.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
