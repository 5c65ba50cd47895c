package availability

import (
	"sort"
	"time"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// mergeTimes unions the time slots of all eligible rows into one sorted,
// deduplicated list. Entries not matching HH:MM are dropped, never propagated.
// Sorting is lexicographic, which equals chronological order for zero-padded
// HH:MM strings.
func mergeTimes(rows []*domain.SlotRow) []types.TimeString {
	seen := make(map[string]struct{})

	for _, row := range rows {
		if !row.IsEligible() {
			continue
		}
		for _, slot := range row.TimeSlots {
			if !types.IsValidTimeSlot(slot) {
				continue
			}
			seen[slot] = struct{}{}
		}
	}

	merged := make([]types.TimeString, 0, len(seen))
	for slot := range seen {
		merged = append(merged, types.TimeString(slot))
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].IsBefore(merged[j])
	})

	return merged
}

// availableDates returns the sorted dates for which at least one eligible row
// has a non-empty slot list. The per-date flag is an OR across staff rows: a
// date marked available is never downgraded by a later empty row for a
// different staff member.
func availableDates(rows []*domain.SlotRow) []types.DateString {
	hasSlots := make(map[types.DateString]bool)

	for _, row := range rows {
		if !row.IsEligible() {
			continue
		}
		if row.HasSlots() {
			hasSlots[row.Date] = true
		} else if _, exists := hasSlots[row.Date]; !exists {
			hasSlots[row.Date] = false
		}
	}

	dates := make([]types.DateString, 0, len(hasSlots))
	for date, available := range hasSlots {
		if available {
			dates = append(dates, date)
		}
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].IsBefore(dates[j])
	})

	return dates
}

// oldestSyncedAt returns the oldest last_synced_at among eligible rows, or the
// zero time when no rows contributed. The legacy behavior read an arbitrary
// row's timestamp; taking the oldest is the conservative choice for staleness.
func oldestSyncedAt(rows []*domain.SlotRow) time.Time {
	var oldest time.Time

	for _, row := range rows {
		if !row.IsEligible() || row.LastSyncedAt.IsZero() {
			continue
		}
		if oldest.IsZero() || row.LastSyncedAt.Before(oldest) {
			oldest = row.LastSyncedAt
		}
	}

	return oldest
}

// isStale reports whether the oldest contributing sync is older than the
// staleness threshold. An answer without contributing rows is never stale.
func isStale(oldest, now time.Time) bool {
	if oldest.IsZero() {
		return false
	}
	return now.Sub(oldest) > domain.StalenessThreshold
}
