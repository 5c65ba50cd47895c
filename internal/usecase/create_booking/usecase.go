package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/haarkliniek/HK-AvailabilityService/internal/config"
	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/internal/integrations/calendarprovider"
)

// UseCase creates a booking: it re-resolves the staff member for the chosen
// slot, books the appointment at the scheduling provider, and then clears the
// now-inconsistent cached availability. Booking success is the primary
// contract; cache freshness is best-effort.
type UseCase struct {
	staffSelector StaffSelector
	catalog       Catalog
	calendar      CalendarClient
	cache         CacheInvalidator
	sessions      SessionStore
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates a new booking usecase
func NewUseCase(
	staffSelector StaffSelector,
	catalog Catalog,
	calendar CalendarClient,
	cache CacheInvalidator,
	sessions SessionStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffSelector: staffSelector,
		catalog:       catalog,
		calendar:      calendar,
		cache:         cache,
		sessions:      sessions,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute performs the booking flow
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%s, treatment=%s, mode=%s, date=%s, time=%s",
		req.SessionID, req.Treatment, req.Mode, req.Date, req.StartTime)

	// 1. Validate input
	date, startTime, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve service configuration
	entry, err := uc.catalog.ByService(domain.Treatment(req.Treatment), domain.DeliveryMode(req.Mode))
	if err != nil {
		if errors.Is(err, config.ErrServiceNotConfigured) || errors.Is(err, domain.ErrIncompleteService) {
			uc.logger.Warn("CreateBooking: unknown service treatment=%s, mode=%s", req.Treatment, req.Mode)
			return nil, fmt.Errorf("%w: treatment=%s, mode=%s", ErrUnknownService, req.Treatment, req.Mode)
		}
		uc.logger.Error("CreateBooking: failed to resolve service config: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve service config: %v", ErrInternal, err)
	}

	// 3. Re-select the staff member for the chosen slot. The time came from
	// the day aggregation, but a concurrent booking may have consumed it.
	staff, err := uc.staffSelector.SelectStaff(ctx, entry.Key, date, startTime)
	if err != nil {
		uc.logger.Error("CreateBooking: staff selection failed for service=%s, date=%s, time=%s: %v",
			entry.Key, date, startTime, err)
		return nil, fmt.Errorf("%w: staff selection failed: %v", ErrInternal, err)
	}
	if staff == nil {
		uc.logger.Warn("CreateBooking: no staff available for service=%s, date=%s, time=%s",
			entry.Key, date, startTime)
		return nil, ErrNoStaffAvailable
	}

	// 4. Book the appointment at the scheduling provider
	appointment, err := uc.calendar.CreateAppointment(ctx, &calendarprovider.AppointmentRequest{
		CalendarID:      entry.CalendarID,
		Date:            date.String(),
		StartTime:       startTime.String(),
		DurationMinutes: entry.DurationMinutes,
		StaffID:         staff.StaffID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, calendarprovider.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot taken upstream for service=%s, date=%s, time=%s",
				entry.Key, date, startTime)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateBooking: provider booking failed for service=%s, date=%s, time=%s: %v",
			entry.Key, date, startTime, err)
		return nil, fmt.Errorf("%w: provider booking failed: %v", ErrInternal, err)
	}

	bookingRef := uuid.NewString()

	// 5. Invalidate cached availability for the consumed date.
	// Failures are logged and swallowed: the booking already succeeded.
	if err := uc.cache.Invalidate(ctx, entry.Key, date); err != nil {
		uc.logger.Error("CreateBooking: cache invalidation failed for service=%s, date=%s: %v",
			entry.Key, date, err)
	}

	// 6. Ask the provider to push fresh slots for the consumed date (best-effort)
	if err := uc.calendar.TriggerResyncWithGracefulDegradation(ctx, entry.CalendarID, date); err != nil {
		uc.logger.Warn("CreateBooking: resync skipped for service=%s, date=%s: %v", entry.Key, date, err)
	}

	// 7. Clear the visitor's booking-flow session (best-effort)
	if req.SessionID != "" && uc.sessions != nil {
		if err := uc.sessions.Reset(ctx, req.SessionID); err != nil {
			uc.logger.Warn("CreateBooking: failed to reset session=%s: %v", req.SessionID, err)
		}
	}

	uc.logger.Info("CreateBooking: booked ref=%s, appointment=%s, service=%s, date=%s, time=%s, staff=%s",
		bookingRef, appointment.AppointmentID, entry.Key, date, startTime, staff.StaffID)

	return &Response{
		BookingRef:      bookingRef,
		AppointmentID:   appointment.AppointmentID,
		ServiceKey:      entry.Key.String(),
		Date:            date.String(),
		StartTime:       startTime.String(),
		StaffID:         staff.StaffID,
		StaffName:       staff.StaffName,
		DurationMinutes: entry.DurationMinutes,
		PriceEUR:        entry.PriceEUR,
	}, nil
}
