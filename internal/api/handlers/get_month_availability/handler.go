package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/haarkliniek/HK-AvailabilityService/internal/api/handlers"
	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	availabilitySvc "github.com/haarkliniek/HK-AvailabilityService/internal/service/availability"
)

const (
	msgMissingServiceKey = "servicesleutel is verplicht"
	msgInvalidYear       = "ongeldig jaar"
	msgInvalidMonth      = "ongeldige maand, verwacht 1-12"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceKey}/month-availability
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceKey := vars["serviceKey"]
	if serviceKey == "" {
		h.logger.Warn("GET /services/{key}/month-availability - Missing service key")
		handlers.RespondBadRequest(w, msgMissingServiceKey)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		h.logger.Warn("GET /services/{key}/month-availability - Invalid year: %q", r.URL.Query().Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /services/{key}/month-availability - Invalid month: %q", r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.MonthAvailability(r.Context(), domain.ServiceKey(serviceKey), year, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, availabilitySvc.ErrInvalidMonth):
			h.logger.Warn("GET /services/{key}/month-availability - Invalid month: %d", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
		default:
			h.logger.Error("GET /services/{key}/month-availability - Failed: service=%s, year=%d, month=%d, error=%v",
				serviceKey, year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{key}/month-availability - OK: service=%s, year=%d, month=%d, dates_count=%d, stale=%t",
		serviceKey, year, month, len(result.Dates), result.Stale)
	handlers.RespondJSON(w, http.StatusOK, FromMonthAvailability(result))
}
