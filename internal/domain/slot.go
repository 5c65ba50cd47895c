package domain

import (
	"time"

	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// SyncStatus represents the outcome of the last upstream calendar sync for a row
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
	SyncStatusPending SyncStatus = "pending"
)

// SlotRow is one mirrored availability row: the time slots one staff member
// offers for one service on one calendar date. Rows are written by the
// external sync job and are read-only from this service's perspective.
// At most one row exists per (service key, date, staff id).
type SlotRow struct {
	ID           int64
	ServiceKey   ServiceKey
	Date         types.DateString
	StaffID      string
	StaffName    string
	TimeSlots    []string // raw HH:MM strings, validated during aggregation
	SyncStatus   SyncStatus
	LastSyncedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsEligible reports whether the row may contribute to aggregation.
// Rows from failed syncs are excluded entirely, not treated as zero slots.
func (r *SlotRow) IsEligible() bool {
	return r.SyncStatus == SyncStatusSuccess
}

// HasSlots reports whether the row carries at least one slot entry
func (r *SlotRow) HasSlots() bool {
	return len(r.TimeSlots) > 0
}

// HasTime reports whether the row contains the exact requested time
func (r *SlotRow) HasTime(t types.TimeString) bool {
	for _, slot := range r.TimeSlots {
		if slot == t.String() {
			return true
		}
	}
	return false
}
