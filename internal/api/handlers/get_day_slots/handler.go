package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/haarkliniek/HK-AvailabilityService/internal/api/handlers"
	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	availabilitySvc "github.com/haarkliniek/HK-AvailabilityService/internal/service/availability"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

const (
	msgMissingServiceKey = "servicesleutel is verplicht"
	msgInvalidDate       = "ongeldige datum, verwacht formaat JJJJ-MM-DD"
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

// Handle GET /api/v1/services/{serviceKey}/days/{date}/times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceKey := vars["serviceKey"]
	if serviceKey == "" {
		h.logger.Warn("GET /services/{key}/days/{date}/times - Missing service key")
		handlers.RespondBadRequest(w, msgMissingServiceKey)
		return
	}

	date, err := types.NewDateStringFromString(vars["date"])
	if err != nil {
		h.logger.Warn("GET /services/{key}/days/{date}/times - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	day, err := h.service.MergedTimesForDay(r.Context(), domain.ServiceKey(serviceKey), date)
	if err != nil {
		if errors.Is(err, availabilitySvc.ErrFetchFailed) {
			h.logger.Error("GET /services/{key}/days/{date}/times - Fetch failed: service=%s, date=%s, error=%v",
				serviceKey, date, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Error("GET /services/{key}/days/{date}/times - Unexpected error: service=%s, date=%s, error=%v",
			serviceKey, date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services/{key}/days/{date}/times - OK: service=%s, date=%s, times_count=%d",
		serviceKey, date, len(day.Times))
	handlers.RespondJSON(w, http.StatusOK, FromDayAvailability(day))
}
