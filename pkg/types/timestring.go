package types

import (
	"fmt"
	"regexp"
	"time"
)

// TimeFormat layout for time-of-day values (HH:MM, 24-hour)
const TimeFormat = "15:04"

// timePattern is the wire-level shape of a slot time.
// Zero-padded HH:MM, so lexicographic order equals chronological order.
var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// TimeString represents a time of day as a zero-padded "HH:MM" string
type TimeString string

// NewTimeString creates a TimeString from a time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString validates and creates a TimeString from a raw string
func NewTimeStringFromString(s string) (TimeString, error) {
	if !timePattern.MatchString(s) {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if _, err := time.Parse(TimeFormat, s); err != nil {
		return "", fmt.Errorf("invalid time %q: %v", s, err)
	}
	return TimeString(s), nil
}

// IsValidTimeSlot reports whether a raw slot entry matches the HH:MM pattern.
// Entries failing this check are dropped during aggregation, not propagated.
func IsValidTimeSlot(s string) bool {
	return timePattern.MatchString(s)
}

// String returns the string representation
func (t TimeString) String() string {
	return string(t)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns a new TimeString shifted forward by the given minutes
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %v", t, err)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}
