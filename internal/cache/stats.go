package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smartlife/internal/middleware"
)

const (
	WorkoutStatsKeyPrefix    = "stats:workouts:%d"
	ProgressSummaryKeyPrefix = "stats:progress:summary:%d"
	ProgressTrendsKeyPrefix  = "stats:progress:trends:%d"
)

// StatsTTL bounds how stale a cached summary can be if an invalidation is lost.
const StatsTTL = 5 * time.Minute

func WorkoutStatsKey(userID uint) string {
	return fmt.Sprintf(WorkoutStatsKeyPrefix, userID)
}

func ProgressSummaryKey(userID uint) string {
	return fmt.Sprintf(ProgressSummaryKeyPrefix, userID)
}

func ProgressTrendsKey(userID uint) string {
	return fmt.Sprintf(ProgressTrendsKeyPrefix, userID)
}

// Invalidate removes keys from the cache.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "cache invalidation failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}

func InvalidateWorkoutStats(ctx context.Context, userID uint) {
	Invalidate(ctx, WorkoutStatsKey(userID))
}

func InvalidateProgressStats(ctx context.Context, userID uint) {
	Invalidate(ctx, ProgressSummaryKey(userID), ProgressTrendsKey(userID))
}
