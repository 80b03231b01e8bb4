package input

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Cache stores raw inputs by key. Get reports a miss with ok=false, not an error.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// CacheKey names the cached input of one day.
func CacheKey(year, day int) string {
	return fmt.Sprintf("%d-%02d", year, day)
}

// CachedSource reads through a cache in front of another source. Cache
// failures are logged and otherwise ignored.
type CachedSource struct {
	cache  Cache
	next   Source
	year   int
	logger *zerolog.Logger
}

func NewCachedSource(cache Cache, next Source, year int, logger *zerolog.Logger) *CachedSource {
	return &CachedSource{
		cache:  cache,
		next:   next,
		year:   year,
		logger: logger,
	}
}

func (s *CachedSource) Fetch(ctx context.Context, day int) (string, error) {
	key := CacheKey(s.year, day)

	cached, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.logger.Warn().Err(err).Str("key", key).Msg("Input cache read failed")
	case ok:
		s.logger.Debug().Str("key", key).Msg("Input cache hit")
		return cached, nil
	}

	text, err := s.next.Fetch(ctx, day)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, key, text); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Input cache write failed")
	}
	return text, nil
}

// DirCache keeps one file per input under Dir.
type DirCache struct {
	Dir string
}

func NewDirCache(dir string) *DirCache {
	return &DirCache{Dir: dir}
}

func (c *DirCache) path(key string) string {
	return filepath.Join(c.Dir, key+".input")
}

func (c *DirCache) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (c *DirCache) Set(ctx context.Context, key string, value string) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path(key), []byte(value), 0o644)
}

// RedisCache stores inputs as plain string keys with an optional TTL.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value string) error {
	return c.client.Set(ctx, c.prefix+key, value, c.ttl).Err()
}
