package create_booking

// Request carries one booking attempt from the website
type Request struct {
	SessionID     string // visitor session id (from the auth header)
	Treatment     string // treatment type, e.g. "haartransplantatie"
	Mode          string // delivery mode: "online" or "onsite"
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string
}

// Response confirms a created booking
type Response struct {
	BookingRef      string // reference shown to the customer
	AppointmentID   string // provider-side appointment id
	ServiceKey      string
	Date            string
	StartTime       string
	StaffID         string
	StaffName       string
	DurationMinutes int
	PriceEUR        float64
}
