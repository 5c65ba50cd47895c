package create_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/haarkliniek/HK-AvailabilityService/internal/api/handlers"
	"github.com/haarkliniek/HK-AvailabilityService/internal/api/middleware"
	createBooking "github.com/haarkliniek/HK-AvailabilityService/internal/usecase/create_booking"
)

const (
	msgInvalidBody    = "ongeldig verzoek"
	msgInvalidInput   = "ongeldige of onvolledige boekingsgegevens"
	msgUnknownService = "onbekende behandeling of consultvorm"
	msgSlotGone       = "het gekozen tijdstip is niet meer beschikbaar"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	sessionID := middleware.SessionIDFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), body.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: treatment=%s, mode=%s", body.Treatment, body.Mode)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrNoStaffAvailable):
			h.logger.Warn("POST /bookings - No staff available: treatment=%s, date=%s, time=%s",
				body.Treatment, body.Date, body.StartTime)
			handlers.RespondConflict(w, msgSlotGone)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: treatment=%s, date=%s, time=%s",
				body.Treatment, body.Date, body.StartTime)
			handlers.RespondConflict(w, msgSlotGone)

		default:
			h.logger.Error("POST /bookings - Failed: treatment=%s, date=%s, time=%s, error=%v",
				body.Treatment, body.Date, body.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: ref=%s, service=%s, date=%s, time=%s",
		result.BookingRef, result.ServiceKey, result.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
