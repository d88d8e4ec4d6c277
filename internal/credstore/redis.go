package credstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/storegate/console/pkg/config"
)

// RedisStore keeps credentials in a shared redis deployment, namespaced so
// several console instances can share one server.
type RedisStore struct {
	raw       *redis.Client
	namespace string
}

// NewRedisStore connects to redis and verifies connectivity.
func NewRedisStore(ctx context.Context, cfg config.StoreConfig) (*RedisStore, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{raw: raw, namespace: cfg.Namespace}, nil
}

func redisOptions(cfg config.StoreConfig) (*redis.Options, error) {
	if cfg.RedisURL == "" && cfg.RedisAddress == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.RedisPoolSize
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.RedisDialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.RedisReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.RedisWriteTimeout
	}
	return opts, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.raw.Get(ctx, s.buildKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.raw.Set(ctx, s.buildKey(key), value, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.raw.Del(ctx, s.buildKey(key)).Err()
}

// Ping verifies the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.raw.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.raw.Close()
}

func (s *RedisStore) buildKey(key string) string {
	parts := []string{"session"}
	if s.namespace != "" {
		parts = append([]string{strings.TrimSpace(s.namespace)}, parts...)
	}
	parts = append(parts, key)
	return strings.Join(parts, ":")
}
