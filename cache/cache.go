// Package cache provides a small byte cache with in-memory and Redis backends.
package cache

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Cache implementations must be safe for concurrent use.
type Cache interface {
	// Get returns ErrCacheMiss when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value; a zero ttl uses the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

type Error string

func (e Error) Error() string {
	return string(e)
}

const ErrCacheMiss Error = "cache miss"

type Options struct {
	RedisURL   string
	Prefix     string
	DefaultTTL time.Duration
}

// New returns a Redis cache when a URL is configured, otherwise an in-memory one.
// A Redis connection failure falls back to memory so the API keeps serving.
func New(opts Options, log logrus.FieldLogger) Cache {
	if opts.RedisURL != "" {
		c, err := NewRedisCache(opts.RedisURL, opts.Prefix, opts.DefaultTTL)
		if err == nil {
			log.Info("using redis cache")
			return c
		}
		log.WithError(err).Warn("redis unavailable, falling back to memory cache")
	}
	return NewMemoryCache(opts.DefaultTTL)
}
