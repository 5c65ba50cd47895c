package get_month_availability

import (
	"context"
	"time"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
)

type AvailabilityService interface {
	MonthAvailability(ctx context.Context, key domain.ServiceKey, year int, month time.Month) (*domain.MonthAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
