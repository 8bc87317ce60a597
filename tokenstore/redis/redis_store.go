package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/jrsteele09/torneo-pingpong/tokenstore"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 2 * time.Second

var _ tokenstore.Store = (*RedisStore)(nil)

// RedisStore keeps the token under <prefix>:<key>, which lets several
// terminals on different hosts share one sign-in.
type RedisStore struct {
	redis   redis.UniversalClient
	key     string
	timeout time.Duration
}

type Option func(*RedisStore)

// WithTimeout bounds every redis round trip.
func WithTimeout(d time.Duration) Option {
	return func(s *RedisStore) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func New(client redis.UniversalClient, prefix, key string, opts ...Option) *RedisStore {
	s := &RedisStore{
		redis:   client,
		key:     prefix + ":" + key,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key is the redis key holding the token.
func (s *RedisStore) Key() string {
	return s.key
}

func (s *RedisStore) Read() (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	token, err := s.redis.Get(ctx, s.key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", s.key).Msg("Token store unreachable, treating as empty")
		}
		return "", false
	}
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *RedisStore) Write(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.redis.Set(ctx, s.key, token, 0).Err(); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("Failed to persist token")
	}
}

func (s *RedisStore) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.redis.Del(ctx, s.key).Err(); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("Failed to clear token")
	}
}
