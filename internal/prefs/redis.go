package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey holds the theme name as a plain string.
const DefaultRedisKey = "sitecards:theme"

// RedisStore keeps preferences in Redis so several instances share them.
type RedisStore struct {
	client *redis.Client
	key    string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKey overrides the key the theme is stored under.
func WithKey(key string) RedisStoreOption {
	return func(s *RedisStore) { s.key = key }
}

func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client, key: DefaultRedisKey}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *RedisStore) Load(ctx context.Context) (Prefs, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return Prefs{}, ErrNotFound
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return Prefs{Theme: Theme(v)}, nil
}

func (s *RedisStore) Save(ctx context.Context, p Prefs) error {
	if err := s.client.Set(ctx, s.key, string(p.Theme), 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
