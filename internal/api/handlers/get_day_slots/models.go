package get_day_slots

import "github.com/haarkliniek/HK-AvailabilityService/internal/domain"

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	ServiceKey string   `json:"serviceKey"`
	Date       string   `json:"date"`
	Times      []string `json:"times"`
}

// FromDayAvailability converts the service result to an HTTP response
func FromDayAvailability(day *domain.DayAvailability) *DaySlotsResponse {
	times := make([]string, len(day.Times))
	for i, t := range day.Times {
		times[i] = t.String()
	}

	return &DaySlotsResponse{
		ServiceKey: day.ServiceKey.String(),
		Date:       day.Date.String(),
		Times:      times,
	}
}
