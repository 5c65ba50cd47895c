package domain

import (
	"time"

	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// DayAvailability is the merged, deduplicated, sorted set of bookable times
// for one service on one date, aggregated across all eligible staff rows
type DayAvailability struct {
	ServiceKey ServiceKey
	Date       types.DateString
	Times      []types.TimeString
}

// MonthAvailability lists the dates of one month on which at least one staff
// member has at least one slot, plus a freshness signal for the whole answer
type MonthAvailability struct {
	ServiceKey     ServiceKey
	Year           int
	Month          time.Month
	Dates          []types.DateString
	OldestSyncedAt time.Time // zero when no rows contributed
	Stale          bool      // oldest contributing sync older than StalenessThreshold
}

// StaffAssignment names the staff member resolved for a chosen date and time
type StaffAssignment struct {
	StaffID   string
	StaffName string
}
