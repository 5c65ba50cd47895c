package calendarprovider

// AppointmentRequest is the payload for creating an appointment upstream
type AppointmentRequest struct {
	CalendarID      string  `json:"calendar_id"`
	Date            string  `json:"date"`       // YYYY-MM-DD
	StartTime       string  `json:"start_time"` // HH:MM
	DurationMinutes int     `json:"duration_minutes"`
	StaffID         string  `json:"staff_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse is the provider's confirmation of a created appointment
type AppointmentResponse struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

// ErrorResponse is the provider's error payload
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
