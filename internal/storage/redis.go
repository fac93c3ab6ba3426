package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultRedisPrefix namespaces collection keys in a shared Redis.
const DefaultRedisPrefix = "food-delivery:"

// RedisStore implements Store on Redis string values.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed store. Documents never expire.
func NewRedisStore(client *redis.Client, prefix string, logger zerolog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		logger: logger.With().Str("store", "redis").Logger(),
	}
}

// Get retrieves the document stored under key.
func (s *RedisStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}

	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("key", string(key)).Msg("redis get failed")
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	return data, true, nil
}

// Set replaces the document stored under key.
func (s *RedisStore) Set(ctx context.Context, key Key, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.redisKey(key), value, 0).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", string(key)).Msg("redis set failed")
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) redisKey(key Key) string {
	return s.prefix + string(key)
}
