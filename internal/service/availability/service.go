package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

// Service answers day-level, month-level and first-date availability
// questions over the mirrored slot store. All operations are stateless
// reads, safe to call concurrently from any number of goroutines.
type Service struct {
	slotRepo      SlotRepository
	cache         Cache
	timeProvider  TimeProvider
	lookaheadDays int
	logger        Logger
}

// NewService creates a new availability service. cache may be nil to disable
// the read-through cache; lookaheadDays <= 0 falls back to the default horizon.
func NewService(slotRepo SlotRepository, cache Cache, lookaheadDays int, logger Logger) *Service {
	if lookaheadDays <= 0 {
		lookaheadDays = domain.DefaultLookaheadDays
	}
	return &Service{
		slotRepo:      slotRepo,
		cache:         cache,
		timeProvider:  &RealTimeProvider{},
		lookaheadDays: lookaheadDays,
		logger:        logger,
	}
}

// MergedTimesForDay returns the sorted union of bookable times for one
// service on one date. A missing service key or date yields an empty answer
// without querying; no eligible rows yields an empty answer, not an error.
func (s *Service) MergedTimesForDay(ctx context.Context, rawKey domain.ServiceKey, date types.DateString) (*domain.DayAvailability, error) {
	if rawKey == "" || date.IsZero() {
		return &domain.DayAvailability{ServiceKey: rawKey, Date: date, Times: []types.TimeString{}}, nil
	}

	key := domain.NormalizeServiceKey(rawKey)

	if cached := s.cachedDay(ctx, key, date); cached != nil {
		return cached, nil
	}

	rows, err := s.slotRepo.ListByServiceAndDate(ctx, key, date)
	if err != nil {
		s.logger.Error("MergedTimesForDay: failed to fetch rows for service=%s, date=%s: %v", key, date, err)
		return nil, fmt.Errorf("%w: MergedTimesForDay - repository error: %v", ErrFetchFailed, err)
	}

	day := &domain.DayAvailability{
		ServiceKey: key,
		Date:       date,
		Times:      mergeTimes(rows),
	}

	if s.cache != nil {
		if err := s.cache.SetDay(ctx, day); err != nil {
			s.logger.Warn("MergedTimesForDay: failed to cache result for service=%s, date=%s: %v", key, date, err)
		}
	}

	s.logger.Info("MergedTimesForDay: service=%s, date=%s, staff_rows=%d, times=%d",
		key, date, len(rows), len(day.Times))

	return day, nil
}

// MonthAvailability returns the dates of the given month with at least one
// bookable slot, plus a staleness verdict derived from the oldest
// contributing sync timestamp.
func (s *Service) MonthAvailability(ctx context.Context, rawKey domain.ServiceKey, year int, month time.Month) (*domain.MonthAvailability, error) {
	if rawKey == "" {
		return &domain.MonthAvailability{Year: year, Month: month, Dates: []types.DateString{}}, nil
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	key := domain.NormalizeServiceKey(rawKey)
	now := s.timeProvider.Now()

	if cached := s.cachedMonth(ctx, key, year, month); cached != nil {
		cached.Stale = isStale(cached.OldestSyncedAt, now)
		return cached, nil
	}

	first, last := types.MonthBounds(year, month)

	rows, err := s.slotRepo.ListByServiceAndDateRange(ctx, key, first, last)
	if err != nil {
		s.logger.Error("MonthAvailability: failed to fetch rows for service=%s, month=%04d-%02d: %v",
			key, year, int(month), err)
		return nil, fmt.Errorf("%w: MonthAvailability - repository error: %v", ErrFetchFailed, err)
	}

	oldest := oldestSyncedAt(rows)
	result := &domain.MonthAvailability{
		ServiceKey:     key,
		Year:           year,
		Month:          month,
		Dates:          availableDates(rows),
		OldestSyncedAt: oldest,
		Stale:          isStale(oldest, now),
	}

	if s.cache != nil {
		if err := s.cache.SetMonth(ctx, result); err != nil {
			s.logger.Warn("MonthAvailability: failed to cache result for service=%s, month=%04d-%02d: %v",
				key, year, int(month), err)
		}
	}

	s.logger.Info("MonthAvailability: service=%s, month=%04d-%02d, available_dates=%d, stale=%t",
		key, year, int(month), len(result.Dates), result.Stale)

	return result, nil
}

// FirstAvailableDate returns the earliest date on or after today with at
// least one bookable slot, or the empty date when none exists within the
// lookahead horizon. Booking UIs treat the empty answer as "no date
// preselected", never as an error.
func (s *Service) FirstAvailableDate(ctx context.Context, rawKey domain.ServiceKey) (types.DateString, error) {
	if rawKey == "" {
		return "", nil
	}

	key := domain.NormalizeServiceKey(rawKey)
	today := types.NewDateString(s.timeProvider.Now())

	rows, err := s.slotRepo.ListByServiceFromDate(ctx, key, today, s.lookaheadDays)
	if err != nil {
		s.logger.Error("FirstAvailableDate: failed to fetch rows for service=%s: %v", key, err)
		return "", fmt.Errorf("%w: FirstAvailableDate - repository error: %v", ErrFetchFailed, err)
	}

	dates := availableDates(rows)
	if len(dates) == 0 {
		s.logger.Info("FirstAvailableDate: service=%s has no availability within %d days", key, s.lookaheadDays)
		return "", nil
	}

	s.logger.Info("FirstAvailableDate: service=%s, first=%s", key, dates[0])
	return dates[0], nil
}

// cachedDay returns a cached day answer, treating cache errors as misses
func (s *Service) cachedDay(ctx context.Context, key domain.ServiceKey, date types.DateString) *domain.DayAvailability {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.GetDay(ctx, key, date)
	if err != nil {
		s.logger.Warn("cachedDay: cache read failed for service=%s, date=%s: %v", key, date, err)
		return nil
	}
	return cached
}

// cachedMonth returns a cached month answer, treating cache errors as misses
func (s *Service) cachedMonth(ctx context.Context, key domain.ServiceKey, year int, month time.Month) *domain.MonthAvailability {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.GetMonth(ctx, key, year, month)
	if err != nil {
		s.logger.Warn("cachedMonth: cache read failed for service=%s, month=%04d-%02d: %v", key, year, int(month), err)
		return nil
	}
	return cached
}
