package create_booking

import (
	"context"
	"time"

	"github.com/haarkliniek/HK-AvailabilityService/internal/config"
	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/internal/integrations/calendarprovider"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// StaffSelector resolves the staff member for a chosen date and time
type StaffSelector interface {
	SelectStaff(ctx context.Context, key domain.ServiceKey, date types.DateString, t types.TimeString) (*domain.StaffAssignment, error)
}

// Catalog resolves service configuration for a (treatment, mode) pair
type Catalog interface {
	ByService(treatment domain.Treatment, mode domain.DeliveryMode) (*config.ServiceEntry, error)
}

// CalendarClient is the scheduling provider surface used when booking
type CalendarClient interface {
	CreateAppointment(ctx context.Context, req *calendarprovider.AppointmentRequest) (*calendarprovider.AppointmentResponse, error)
	TriggerResyncWithGracefulDegradation(ctx context.Context, calendarID string, date types.DateString) error
}

// CacheInvalidator drops cached availability for a now-consumed date
type CacheInvalidator interface {
	Invalidate(ctx context.Context, key domain.ServiceKey, date types.DateString) error
}

// SessionStore clears the visitor's booking-flow session after success
type SessionStore interface {
	Reset(ctx context.Context, sessionID string) error
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

// Logger is the logging interface consumed by the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
