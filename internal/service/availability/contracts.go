package availability

import (
	"context"
	"time"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// SlotRepository is the slot store query surface the aggregator depends on
type SlotRepository interface {
	ListByServiceAndDate(ctx context.Context, key domain.ServiceKey, date types.DateString) ([]*domain.SlotRow, error)
	ListByServiceAndDateRange(ctx context.Context, key domain.ServiceKey, from, to types.DateString) ([]*domain.SlotRow, error)
	ListByServiceFromDate(ctx context.Context, key domain.ServiceKey, from types.DateString, horizonDays int) ([]*domain.SlotRow, error)
}

// Cache is the optional read-through cache for aggregation results.
// A nil Cache disables caching; cache errors are treated as misses.
type Cache interface {
	GetDay(ctx context.Context, key domain.ServiceKey, date types.DateString) (*domain.DayAvailability, error)
	SetDay(ctx context.Context, day *domain.DayAvailability) error
	GetMonth(ctx context.Context, key domain.ServiceKey, year int, month time.Month) (*domain.MonthAvailability, error)
	SetMonth(ctx context.Context, m *domain.MonthAvailability) error
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging interface consumed by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
