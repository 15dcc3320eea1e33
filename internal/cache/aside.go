package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"smartlife/internal/middleware"
	"smartlife/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Aside loads key into dest from Redis, or calls fetch to fill dest and
// stores the result with ttl. Redis failures never fail the call: the value
// is computed directly instead.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if client == nil {
		observability.StatsCache.WithLabelValues(observability.CacheBypass).Inc()
		return fetch()
	}

	raw, err := client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			observability.StatsCache.WithLabelValues(observability.CacheHit).Inc()
			return nil
		}
		middleware.Logger.WarnContext(ctx, "discarding undecodable cache entry", slog.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		middleware.Logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		observability.StatsCache.WithLabelValues(observability.CacheBypass).Inc()
		return fetch()
	}

	observability.StatsCache.WithLabelValues(observability.CacheMiss).Inc()
	if err := fetch(); err != nil {
		return err
	}

	b, err := json.Marshal(dest)
	if err != nil {
		return nil
	}
	if err := client.Set(ctx, key, b, ttl).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return nil
}
