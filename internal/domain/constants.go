package domain

import "time"

// StalenessThreshold is the maximum age of the oldest contributing sync
// before aggregated availability is flagged stale
const StalenessThreshold = 5 * time.Hour

// DefaultLookaheadDays is the horizon scanned for the first available date
const DefaultLookaheadDays = 60

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
