package assignment

import (
	"context"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// SlotRepository is the slot store query surface the selector depends on
type SlotRepository interface {
	ListByServiceAndDate(ctx context.Context, key domain.ServiceKey, date types.DateString) ([]*domain.SlotRow, error)
}

// Catalog resolves the configured preferred staff member for a service key
type Catalog interface {
	PreferredStaff(key domain.ServiceKey) (string, bool)
}

// Logger is the logging interface consumed by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
