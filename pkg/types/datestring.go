package types

import (
	"fmt"
	"time"
)

// DateFormat layout for calendar dates (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// DateString represents a calendar date as an opaque "YYYY-MM-DD" string.
// No time zone conversion is performed on these values: the string written by
// the sync job is the string compared and returned everywhere.
type DateString string

// NewDateString creates a DateString from a time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString validates and creates a DateString from a raw string
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateString(s), nil
}

// String returns the string representation
func (d DateString) String() string {
	return string(d)
}

// IsZero reports whether the date is empty
func (d DateString) IsZero() bool {
	return d == ""
}

// IsBefore reports whether d is strictly earlier than other.
// Lexicographic comparison is correct for zero-padded YYYY-MM-DD.
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// Time parses the date into a time.Time at midnight UTC
func (d DateString) Time() (time.Time, error) {
	return time.Parse(DateFormat, string(d))
}

// AddDays returns a new DateString shifted by the given number of days
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// YearMonth returns the "YYYY-MM" prefix of the date
func (d DateString) YearMonth() string {
	if len(d) < 7 {
		return string(d)
	}
	return string(d)[:7]
}

// MonthBounds returns the first and last day of the given month
func MonthBounds(year int, month time.Month) (DateString, DateString) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return NewDateString(first), NewDateString(last)
}
