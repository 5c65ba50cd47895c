package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/metrics"
	"github.com/haarkliniek/HK-AvailabilityService/pkg/types"
)

const (
	dayKeyFormat   = "availability:day:%s:%s"   // service key, date
	monthKeyFormat = "availability:month:%s:%s" // service key, YYYY-MM
)

// AvailabilityCache is a short-TTL read-through cache for aggregated
// availability answers. It is an optimization only: every method degrades to
// a miss on Redis failure and callers must produce correct results without it.
type AvailabilityCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewAvailabilityCache creates a cache with the given entry TTL.
// metrics may be nil to disable lookup counters.
func NewAvailabilityCache(client *redis.Client, ttl time.Duration, m *metrics.Metrics) *AvailabilityCache {
	return &AvailabilityCache{
		client:  client,
		ttl:     ttl,
		metrics: m,
	}
}

// GetDay returns the cached day aggregation, or (nil, nil) on a miss
func (c *AvailabilityCache) GetDay(ctx context.Context, key domain.ServiceKey, date types.DateString) (*domain.DayAvailability, error) {
	if c.client == nil {
		return nil, nil
	}

	val, err := c.client.Get(ctx, fmt.Sprintf(dayKeyFormat, key, date)).Result()
	if err == redis.Nil {
		c.metrics.ObserveCacheLookup("availability_day", "miss")
		return nil, nil
	}
	if err != nil {
		c.metrics.ObserveCacheLookup("availability_day", "error")
		return nil, fmt.Errorf("failed to get day availability from redis: %w", err)
	}

	var day domain.DayAvailability
	if err := json.Unmarshal([]byte(val), &day); err != nil {
		c.metrics.ObserveCacheLookup("availability_day", "error")
		return nil, fmt.Errorf("failed to unmarshal day availability: %w", err)
	}

	c.metrics.ObserveCacheLookup("availability_day", "hit")
	return &day, nil
}

// SetDay stores a day aggregation under the cache TTL
func (c *AvailabilityCache) SetDay(ctx context.Context, day *domain.DayAvailability) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("failed to marshal day availability: %w", err)
	}

	redisKey := fmt.Sprintf(dayKeyFormat, day.ServiceKey, day.Date)
	if err := c.client.Set(ctx, redisKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set day availability in redis: %w", err)
	}

	return nil
}

// GetMonth returns the cached month aggregation, or (nil, nil) on a miss
func (c *AvailabilityCache) GetMonth(ctx context.Context, key domain.ServiceKey, year int, month time.Month) (*domain.MonthAvailability, error) {
	if c.client == nil {
		return nil, nil
	}

	val, err := c.client.Get(ctx, monthKey(key, year, month)).Result()
	if err == redis.Nil {
		c.metrics.ObserveCacheLookup("availability_month", "miss")
		return nil, nil
	}
	if err != nil {
		c.metrics.ObserveCacheLookup("availability_month", "error")
		return nil, fmt.Errorf("failed to get month availability from redis: %w", err)
	}

	var m domain.MonthAvailability
	if err := json.Unmarshal([]byte(val), &m); err != nil {
		c.metrics.ObserveCacheLookup("availability_month", "error")
		return nil, fmt.Errorf("failed to unmarshal month availability: %w", err)
	}

	c.metrics.ObserveCacheLookup("availability_month", "hit")
	return &m, nil
}

// SetMonth stores a month aggregation under the cache TTL.
// The Stale flag is recomputed by readers from OldestSyncedAt, so a cached
// entry cannot freeze a fresh verdict past the staleness threshold.
func (c *AvailabilityCache) SetMonth(ctx context.Context, m *domain.MonthAvailability) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal month availability: %w", err)
	}

	if err := c.client.Set(ctx, monthKey(m.ServiceKey, m.Year, m.Month), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set month availability in redis: %w", err)
	}

	return nil
}

// Invalidate drops the day entry for (service key, date) and the month entry
// covering that date. Idempotent: deleting absent keys is not an error, so
// the call is safe to retry or drop.
func (c *AvailabilityCache) Invalidate(ctx context.Context, key domain.ServiceKey, date types.DateString) error {
	if c.client == nil {
		return nil
	}

	dayKey := fmt.Sprintf(dayKeyFormat, key, date)
	mKey := fmt.Sprintf(monthKeyFormat, key, date.YearMonth())

	if err := c.client.Del(ctx, dayKey, mKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate availability cache: %w", err)
	}

	return nil
}

func monthKey(key domain.ServiceKey, year int, month time.Month) string {
	return fmt.Sprintf(monthKeyFormat, key, fmt.Sprintf("%04d-%02d", year, int(month)))
}
