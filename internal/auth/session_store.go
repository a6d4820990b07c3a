package auth

import (
	"context"
	"time"

	"machinehub/internal/cache"
)

const revokedSessionKeyPrefix = "session:revoked:"

// SessionStore tracks sessions ended before their expiry.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type sessionStore struct {
	cache *cache.Client
}

// Ensure sessionStore implements SessionStore
var _ SessionStore = (*sessionStore)(nil)

// NewSessionStore creates a Redis backed session store.
func NewSessionStore(cache *cache.Client) SessionStore {
	return &sessionStore{cache: cache}
}

// Revoke marks a session as ended until its token would have expired anyway.
func (s *sessionStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedSessionKeyPrefix+sessionID, []byte("1"), ttl)
}

// IsRevoked reports whether the session was ended. An unreachable Redis reads as not revoked.
func (s *sessionStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	data, err := s.cache.Get(ctx, revokedSessionKeyPrefix+sessionID)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
