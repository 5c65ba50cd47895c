package create_booking

import (
	createBooking "github.com/haarkliniek/HK-AvailabilityService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request body
type CreateBookingRequest struct {
	Treatment     string  `json:"treatment"`
	Mode          string  `json:"mode"`
	Date          string  `json:"date"`      // YYYY-MM-DD
	StartTime     string  `json:"startTime"` // HH:MM
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	BookingRef      string  `json:"bookingRef"`
	ServiceKey      string  `json:"serviceKey"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	StaffID         string  `json:"staffId"`
	StaffName       string  `json:"staffName"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceEUR        float64 `json:"priceEur"`
}

// ToUseCaseRequest builds the usecase request from the HTTP body and session id
func (r *CreateBookingRequest) ToUseCaseRequest(sessionID string) *createBooking.Request {
	return &createBooking.Request{
		SessionID:     sessionID,
		Treatment:     r.Treatment,
		Mode:          r.Mode,
		Date:          r.Date,
		StartTime:     r.StartTime,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse converts the usecase response to an HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingRef:      resp.BookingRef,
		ServiceKey:      resp.ServiceKey,
		Date:            resp.Date,
		StartTime:       resp.StartTime,
		StaffID:         resp.StaffID,
		StaffName:       resp.StaffName,
		DurationMinutes: resp.DurationMinutes,
		PriceEUR:        resp.PriceEUR,
	}
}
