package get_first_available_date

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/haarkliniek/HK-AvailabilityService/internal/api/handlers"
	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
)

const msgMissingServiceKey = "servicesleutel is verplicht"

// FirstAvailableDateResponse HTTP response model.
// Date is null when no availability exists within the horizon; the booking UI
// shows no preselected date in that case, it is not an error state.
type FirstAvailableDateResponse struct {
	ServiceKey string  `json:"serviceKey"`
	Date       *string `json:"date"`
}

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

// Handle GET /api/v1/services/{serviceKey}/first-available-date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceKey := vars["serviceKey"]
	if serviceKey == "" {
		h.logger.Warn("GET /services/{key}/first-available-date - Missing service key")
		handlers.RespondBadRequest(w, msgMissingServiceKey)
		return
	}

	date, err := h.service.FirstAvailableDate(r.Context(), domain.ServiceKey(serviceKey))
	if err != nil {
		h.logger.Error("GET /services/{key}/first-available-date - Failed: service=%s, error=%v", serviceKey, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &FirstAvailableDateResponse{ServiceKey: serviceKey}
	if !date.IsZero() {
		dateStr := date.String()
		response.Date = &dateStr
	}

	h.logger.Info("GET /services/{key}/first-available-date - OK: service=%s, date=%v", serviceKey, response.Date)
	handlers.RespondJSON(w, http.StatusOK, response)
}
