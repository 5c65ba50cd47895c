package get_first_available_date

import (
	"context"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

type AvailabilityService interface {
	FirstAvailableDate(ctx context.Context, key domain.ServiceKey) (types.DateString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
