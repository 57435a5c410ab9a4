package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/rueidis"
)

// SessionStore keeps the server side of refresh tokens: an opaque token maps
// to the user it was issued for until it expires or is revoked.
type SessionStore interface {
	Save(ctx context.Context, token, userID string) error
	Resolve(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

const refreshKeyPrefix = "refresh_token:"

type RedisSessionStore struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client rueidis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, token, userID string) error {
	cmd := s.client.B().Set().
		Key(refreshKeyPrefix + token).
		Value(userID).
		ExSeconds(int64(s.ttl.Seconds())).
		Build()
	return s.client.Do(ctx, cmd).Error()
}

// Resolve returns the owning user id, or "" when the token is unknown.
func (s *RedisSessionStore) Resolve(ctx context.Context, token string) (string, error) {
	cmd := s.client.B().Get().Key(refreshKeyPrefix + token).Build()
	result := s.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return "", nil
		}
		return "", err
	}

	return result.ToString()
}

func (s *RedisSessionStore) Revoke(ctx context.Context, token string) error {
	cmd := s.client.B().Del().Key(refreshKeyPrefix + token).Build()
	return s.client.Do(ctx, cmd).Error()
}

// MemorySessionStore backs tests and single-process runs without redis.
type MemorySessionStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{tokens: make(map[string]string)}
}

func (s *MemorySessionStore) Save(ctx context.Context, token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *MemorySessionStore) Resolve(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token], nil
}

func (s *MemorySessionStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
