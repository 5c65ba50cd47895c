package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/haarkliniek/HK-AvailabilityService/internal/domain"
)

const sessionKeyFormat = "booking_session:%s"

// Store persists booking-flow session state in Redis with a sliding TTL.
// Sessions whose schema version does not match the running binary are
// discarded on load, which makes version bumps safe without migration.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store with the given TTL
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the session for the given id, or (nil, nil) when absent or
// written by a different schema version
func (s *Store) Get(ctx context.Context, sessionID string) (*domain.BookingSession, error) {
	if s.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}

	val, err := s.client.Get(ctx, fmt.Sprintf(sessionKeyFormat, sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var session domain.BookingSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if !session.IsCurrentVersion() {
		return nil, nil
	}

	return &session, nil
}

// Put stores the session, stamping version and update time
func (s *Store) Put(ctx context.Context, sessionID string, session *domain.BookingSession) error {
	if s.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	session.Version = domain.BookingSessionVersion
	session.UpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := fmt.Sprintf(sessionKeyFormat, sessionID)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}

	return nil
}

// Reset removes the session. Deleting an absent session is not an error.
func (s *Store) Reset(ctx context.Context, sessionID string) error {
	if s.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	if err := s.client.Del(ctx, fmt.Sprintf(sessionKeyFormat, sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}

	return nil
}
