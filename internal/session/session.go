// Package session tracks logged-in users with opaque server-side tokens
// and carries one-shot flash messages between requests.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix     = "session:"
	userSessionKeyPrefix = "user_session:"
)

// Store persists login sessions. A token maps to the user ID that owns it
// until the TTL runs out or the session is destroyed.
type Store interface {
	Create(ctx context.Context, userID int64, ttl time.Duration) (string, error)
	UserID(ctx context.Context, token string) (int64, bool, error)
	Destroy(ctx context.Context, token string) error
	DestroyUser(ctx context.Context, userID int64) error
}

// RedisStore keeps sessions in Redis: "session:<token>" -> userID plus a
// "user_session:<id>" reverse mapping so a fresh login can replace the
// user's previous session.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Create issues a new session token for the user. Any existing session for
// the same user is invalidated first, so each login starts a fresh timer.
func (s *RedisStore) Create(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	if err := s.DestroyUser(ctx, userID); err != nil {
		return "", err
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	userIDStr := strconv.FormatInt(userID, 10)
	if err := s.client.Set(ctx, sessionKeyPrefix+token, userIDStr, ttl).Err(); err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, userSessionKeyPrefix+userIDStr, token, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// UserID resolves a token to the user it belongs to. An unknown or expired
// token is not an error; it simply reports ok=false.
func (s *RedisStore) UserID(ctx context.Context, token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	userIDStr, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return userID, true, nil
}

// Destroy invalidates a session. Destroying an already-invalid session is a
// no-op, so logout is idempotent.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	userIDStr, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == nil && userIDStr != "" {
		s.client.Del(ctx, userSessionKeyPrefix+userIDStr)
	}

	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

// DestroyUser invalidates whatever session the user currently holds.
func (s *RedisStore) DestroyUser(ctx context.Context, userID int64) error {
	userSessionKey := userSessionKeyPrefix + strconv.FormatInt(userID, 10)

	token, err := s.client.Get(ctx, userSessionKey).Result()
	if err == nil && token != "" {
		s.client.Del(ctx, sessionKeyPrefix+token)
	}

	err = s.client.Del(ctx, userSessionKey).Err()
	if err == redis.Nil {
		return nil
	}
	return err
}

func newToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}
