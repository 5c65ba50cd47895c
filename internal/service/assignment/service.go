package assignment

import (
	"context"
	"fmt"
	"sort"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// Service resolves which staff member is actually booked once a caller has
// picked a concrete date and time
type Service struct {
	slotRepo SlotRepository
	catalog  Catalog
	logger   Logger
}

// NewService creates a new staff assignment service
func NewService(slotRepo SlotRepository, catalog Catalog, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		catalog:  catalog,
		logger:   logger,
	}
}

// SelectStaff picks the staff member for (service, date, time). The configured
// preferred staff member wins when they carry the requested time; otherwise
// candidates are ordered by staff id ascending and the first is taken. The
// legacy behavior depended on backend row order here; the sort makes the
// fallback deterministic.
//
// A nil result without error means no staff carries the time anymore. Callers
// only offer times that came from the day aggregation, but a concurrent
// booking can legitimately empty this out between read and selection.
func (s *Service) SelectStaff(ctx context.Context, rawKey domain.ServiceKey, date types.DateString, t types.TimeString) (*domain.StaffAssignment, error) {
	key := domain.NormalizeServiceKey(rawKey)

	rows, err := s.slotRepo.ListByServiceAndDate(ctx, key, date)
	if err != nil {
		s.logger.Error("SelectStaff: failed to fetch rows for service=%s, date=%s: %v", key, date, err)
		return nil, fmt.Errorf("%w: SelectStaff - repository error: %v", ErrFetchFailed, err)
	}

	candidates := make([]*domain.SlotRow, 0, len(rows))
	for _, row := range rows {
		if row.IsEligible() && row.HasTime(t) {
			candidates = append(candidates, row)
		}
	}

	if len(candidates) == 0 {
		s.logger.Info("SelectStaff: no staff available for service=%s, date=%s, time=%s", key, date, t)
		return nil, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].StaffID < candidates[j].StaffID
	})

	if preferred, ok := s.catalog.PreferredStaff(key); ok {
		for _, row := range candidates {
			if row.StaffID == preferred {
				s.logger.Info("SelectStaff: assigned preferred staff=%s for service=%s, date=%s, time=%s",
					row.StaffID, key, date, t)
				return &domain.StaffAssignment{StaffID: row.StaffID, StaffName: row.StaffName}, nil
			}
		}
	}

	chosen := candidates[0]
	s.logger.Info("SelectStaff: assigned staff=%s for service=%s, date=%s, time=%s",
		chosen.StaffID, key, date, t)

	return &domain.StaffAssignment{StaffID: chosen.StaffID, StaffName: chosen.StaffName}, nil
}
