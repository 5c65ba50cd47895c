package domain

import "time"

// BookingSessionVersion is the current schema version of BookingSession.
// Persisted sessions with a different version are discarded on load, so the
// struct can evolve without migrating transient state.
const BookingSessionVersion = 1

// BookingSession is the explicit, serializable state of a booking flow in
// progress for one visitor. Replaces the legacy unversioned browser-storage
// blob with a struct that has a declared init/reset lifecycle.
type BookingSession struct {
	Version   int          `json:"version"`
	Language  string       `json:"language"` // "nl" or "en"
	Treatment Treatment    `json:"treatment,omitempty"`
	Mode      DeliveryMode `json:"mode,omitempty"`
	PackageID string       `json:"packageId,omitempty"`
	Date      string       `json:"date,omitempty"`
	Time      string       `json:"time,omitempty"`
	StaffID   string       `json:"staffId,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewBookingSession creates a fresh session for the given language
func NewBookingSession(language string) *BookingSession {
	if language == "" {
		language = "nl"
	}
	return &BookingSession{
		Version:  BookingSessionVersion,
		Language: language,
	}
}

// Reset clears all booking progress but keeps the visitor's language
func (s *BookingSession) Reset() {
	language := s.Language
	*s = BookingSession{
		Version:  BookingSessionVersion,
		Language: language,
	}
}

// IsCurrentVersion reports whether the session matches the running schema
func (s *BookingSession) IsCurrentVersion() bool {
	return s.Version == BookingSessionVersion
}
