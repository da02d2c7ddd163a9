package docstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "transitnet:network:"

// RedisStore keeps each document as a string value under Prefix+key.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{Client: client, Prefix: prefix}
}

func (s *RedisStore) Name() string {
	return "redis"
}

func (s *RedisStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.Client == nil {
		return nil, errors.New("redis client not connected")
	}

	document, err := s.Client.Get(ctx, s.Prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s%s: %w", s.Prefix, key, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return io.NopCloser(strings.NewReader(document)), nil
}

func (s *RedisStore) Write(ctx context.Context, key string, document []byte) error {
	if s.Client == nil {
		return errors.New("redis client not connected")
	}

	return s.Client.Set(ctx, s.Prefix+key, document, 0).Err()
}
