package get_month_availability

import "github.com/haarkliniek/HK-AvailabilityService/internal/domain"

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	ServiceKey string   `json:"serviceKey"`
	Year       int      `json:"year"`
	Month      int      `json:"month"`
	Dates      []string `json:"dates"`
	Stale      bool     `json:"stale"`
}

// FromMonthAvailability converts the service result to an HTTP response
func FromMonthAvailability(m *domain.MonthAvailability) *MonthAvailabilityResponse {
	dates := make([]string, len(m.Dates))
	for i, d := range m.Dates {
		dates[i] = d.String()
	}

	return &MonthAvailabilityResponse{
		ServiceKey: m.ServiceKey.String(),
		Year:       m.Year,
		Month:      int(m.Month),
		Dates:      dates,
		Stale:      m.Stale,
	}
}
