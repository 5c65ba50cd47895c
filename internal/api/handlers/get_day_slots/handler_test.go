package get_day_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	availabilitySvc "github.com/haarkliniek/HK-AvailabilityService/internal/service/availability"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	day *domain.DayAvailability
	err error
}

func (s *fakeService) MergedTimesForDay(_ context.Context, key domain.ServiceKey, date types.DateString) (*domain.DayAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.day != nil {
		return s.day, nil
	}
	return &domain.DayAvailability{ServiceKey: key, Date: date, Times: []types.TimeString{}}, nil
}

func newRouter(svc AvailabilityService) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services/{serviceKey}/days/{date}/times",
		NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_ReturnsMergedTimes(t *testing.T) {
	svc := &fakeService{day: &domain.DayAvailability{
		ServiceKey: "haartransplantatie_onsite",
		Date:       "2025-03-10",
		Times:      []types.TimeString{"09:00", "10:00", "11:00"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/haartransplantatie_onsite/days/2025-03-10/times", nil)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body DaySlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "haartransplantatie_onsite", body.ServiceKey)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, body.Times)
}

func TestHandle_EmptyDayIsAnEmptyList(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/haartransplantatie_onsite/days/2025-03-10/times", nil)
	rec := httptest.NewRecorder()
	newRouter(&fakeService{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// times must serialize as [], never null
	assert.Contains(t, rec.Body.String(), `"times":[]`)
}

func TestHandle_InvalidDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/haartransplantatie_onsite/days/10-03-2025/times", nil)
	rec := httptest.NewRecorder()
	newRouter(&fakeService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_FetchFailure(t *testing.T) {
	svc := &fakeService{err: availabilitySvc.ErrFetchFailed}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/haartransplantatie_onsite/days/2025-03-10/times", nil)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
