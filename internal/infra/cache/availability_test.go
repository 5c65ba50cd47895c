package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewAvailabilityCache(client, 5*time.Minute, nil), mr
}

func TestAvailabilityCache_DayRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	day := &domain.DayAvailability{
		ServiceKey: "haartransplantatie_onsite",
		Date:       "2025-03-10",
		Times:      []types.TimeString{"09:00", "10:00"},
	}

	require.NoError(t, c.SetDay(ctx, day))

	got, err := c.GetDay(ctx, day.ServiceKey, day.Date)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, day.Times, got.Times)
}

func TestAvailabilityCache_MissReturnsNil(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	day, err := c.GetDay(ctx, "haartransplantatie_onsite", "2025-03-10")
	require.NoError(t, err)
	assert.Nil(t, day)

	month, err := c.GetMonth(ctx, "haartransplantatie_onsite", 2025, time.March)
	require.NoError(t, err)
	assert.Nil(t, month)
}

func TestAvailabilityCache_MonthRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	syncedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	m := &domain.MonthAvailability{
		ServiceKey:     "haartransplantatie_onsite",
		Year:           2025,
		Month:          time.March,
		Dates:          []types.DateString{"2025-03-10", "2025-03-12"},
		OldestSyncedAt: syncedAt,
	}

	require.NoError(t, c.SetMonth(ctx, m))

	got, err := c.GetMonth(ctx, m.ServiceKey, 2025, time.March)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m.Dates, got.Dates)
	assert.True(t, got.OldestSyncedAt.Equal(syncedAt))
}

func TestAvailabilityCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	day := &domain.DayAvailability{
		ServiceKey: "haartransplantatie_onsite",
		Date:       "2025-03-10",
		Times:      []types.TimeString{"09:00"},
	}
	require.NoError(t, c.SetDay(ctx, day))

	mr.FastForward(6 * time.Minute)

	got, err := c.GetDay(ctx, day.ServiceKey, day.Date)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAvailabilityCache_InvalidateDropsDayAndMonth(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	key := domain.ServiceKey("haartransplantatie_onsite")
	require.NoError(t, c.SetDay(ctx, &domain.DayAvailability{
		ServiceKey: key,
		Date:       "2025-03-10",
		Times:      []types.TimeString{"09:00"},
	}))
	require.NoError(t, c.SetMonth(ctx, &domain.MonthAvailability{
		ServiceKey: key,
		Year:       2025,
		Month:      time.March,
		Dates:      []types.DateString{"2025-03-10"},
	}))
	// A different month must survive the invalidation
	require.NoError(t, c.SetMonth(ctx, &domain.MonthAvailability{
		ServiceKey: key,
		Year:       2025,
		Month:      time.April,
		Dates:      []types.DateString{"2025-04-01"},
	}))

	require.NoError(t, c.Invalidate(ctx, key, "2025-03-10"))

	day, err := c.GetDay(ctx, key, "2025-03-10")
	require.NoError(t, err)
	assert.Nil(t, day)

	month, err := c.GetMonth(ctx, key, 2025, time.March)
	require.NoError(t, err)
	assert.Nil(t, month)

	other, err := c.GetMonth(ctx, key, 2025, time.April)
	require.NoError(t, err)
	assert.NotNil(t, other)
}

func TestAvailabilityCache_InvalidateIsIdempotent(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Invalidate(ctx, "haartransplantatie_onsite", "2025-03-10"))
	require.NoError(t, c.Invalidate(ctx, "haartransplantatie_onsite", "2025-03-10"))
}

func TestAvailabilityCache_NilClientDegradesToMiss(t *testing.T) {
	c := NewAvailabilityCache(nil, time.Minute, nil)
	ctx := context.Background()

	day, err := c.GetDay(ctx, "haartransplantatie_onsite", "2025-03-10")
	require.NoError(t, err)
	assert.Nil(t, day)

	assert.NoError(t, c.SetDay(ctx, &domain.DayAvailability{}))
	assert.NoError(t, c.Invalidate(ctx, "haartransplantatie_onsite", "2025-03-10"))
}
